package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Order statuses
const (
	ORDER_NEW       = "New"
	ORDER_PREPARING = "Preparing"
	ORDER_COMPLETED = "Completed"
	ORDER_PAID      = "Paid"
	ORDER_REJECTED  = "Rejected"
)

var OrderStatuses = []string{ORDER_NEW, ORDER_PREPARING, ORDER_COMPLETED, ORDER_PAID, ORDER_REJECTED}

// Websocket / feed event types
const (
	FEED_INSERT = "INSERT"
	FEED_UPDATE = "UPDATE"
)

const (
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Wrong password"
	ACCOUNT_NOT_ACTIVE       = "Account is disabled"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	NOT_ADMIN                = "Permission denied"
	DATA_INPUT_IS_NOT_NUMBER = "Param is not a number"
	TABLE_NOT_FOUND          = "Table not found"
	ORDER_NOT_FOUND          = "Order not found"
	EMPTY_CART               = "Cart is empty"
	INVALID_STATUS           = "Invalid order status"
)
