package tasklist

// Toast messages.
const (
	MsgEmptyName = "An item cannot be added without a title"
	MsgAdded     = "Task added: %s"
	MsgCompleted = "You completed the task: %s!! Congratulations!!"
	MsgDeleted   = "An item was deleted successfully"
)

const noPending = -1
