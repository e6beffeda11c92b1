package apierrors

const (
	MsgMissingOwner = "missingOwner"

	MsgFailListTask        = "errorListTask"
	MsgFailSearchTasks     = "failSearchTasks"
	MsgFailUpcomingTasks   = "failUpcomingTasks"
	MsgFailTaskStats       = "failTaskStats"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidTaskFilter   = "invalidTaskFilter"
	MsgUnknownSortProperty = "unknownSortProperty"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"

	MsgFailExportTasks    = "failExportTasks"
	MsgFailImportTasks    = "failImportTasks"
	MsgInvalidImportFile  = "invalidImportFile"
	MsgInvalidImportLines = "invalidImportLines"

	MsgFailListCategories     = "failListCategories"
	MsgInvalidCategoryID      = "invalidCategoryID"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgCategoryAlreadyExists  = "categoryAlreadyExists"
	MsgFailGetCategory        = "failGetCategory"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"
)
