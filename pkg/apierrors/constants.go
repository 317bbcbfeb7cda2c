package apierrors

const (
	MsgInternal            = "internalError"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidTaskQuery    = "invalidTaskQuery"
	MsgInvalidPagination   = "invalidPagination"
	MsgTaskNotFound        = "taskNotFound"
	MsgUserNotFound        = "userNotFound"
	MsgFailListTask        = "errorListTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgTaskUpdateForbidden = "taskUpdateForbidden"
	MsgTaskDeleteForbidden = "taskDeleteForbidden"
	MsgTaskVersionConflict = "taskVersionConflict"
	MsgInvalidCommentBody  = "invalidCommentPayload"
	MsgFailAddComment      = "failAddComment"
	MsgFailListComments    = "failListComments"
	MsgInvalidAuthPayload  = "invalidAuthPayload"
	MsgEmptyPassword       = "emptyPassword"
	MsgPasswordTooLong     = "passwordTooLong"
	MsgEmailTaken          = "emailTaken"
	MsgInvalidCredentials  = "invalidCredentials"
	MsgUnauthorized        = "unauthorized"
	MsgTooManyRequests     = "tooManyRequests"
	MsgFailRegister        = "failRegister"
	MsgFailLogin           = "failLogin"
)
