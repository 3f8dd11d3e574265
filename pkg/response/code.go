package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserExists   = 10001
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// 菜品模块错误 200xx
	ErrFoodNotFound = 20001

	// 购物车模块错误 300xx
	ErrCartEmpty = 30001

	// 订单模块错误 400xx
	ErrOrderNotFound  = 40001
	ErrAmountMismatch = 40002
	ErrPaymentFailed  = 40003
	ErrPaymentNotPaid = 40004
	ErrInvalidStatus  = 40005

	// 优惠活动错误 600xx
	ErrPromoNotFound   = 60001
	ErrPromoOutOfStock = 60002
	ErrPromoClaimed    = 60003

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
