package apierrors

const (
	MsgInvalidID               = "invalidID"
	MsgInvalidTaskPayload      = "invalidTaskPayload"
	MsgInvalidCategoryPayload  = "invalidCategoryPayload"
	MsgInvalidSearchParams     = "invalidSearchParams"
	MsgTaskNotFound            = "taskNotFound"
	MsgCategoryNotFound        = "categoryNotFound"
	MsgUnknownCategory         = "unknownCategory"
	MsgUnauthorized            = "unauthorized"
	MsgForbidden               = "forbidden"
	MsgTaskForbidden           = "taskForbidden"
	MsgSearchByAuthorForbidden = "searchByAuthorForbidden"
	MsgFailCreateTask          = "failCreateTask"
	MsgFailGetTask             = "failGetTask"
	MsgFailUpdateTask          = "failUpdateTask"
	MsgFailDeleteTask          = "failDeleteTask"
	MsgFailSearchTasks         = "failSearchTasks"
	MsgFailCreateCategory      = "failCreateCategory"
	MsgFailGetCategory         = "failGetCategory"
	MsgFailUpdateCategory      = "failUpdateCategory"
	MsgFailDeleteCategory      = "failDeleteCategory"
)
