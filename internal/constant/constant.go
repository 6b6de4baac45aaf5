package constant

// 表前缀，加载配置后覆盖
var TablePrefix = "si_"

// JWT 签名密钥，加载配置后覆盖
var Secret = ""

const (
	DefaultConfigPath = "./data/config.ini"
	DefaultDBPath     = "./data/portfolio.db"
	DefaultMediaDir   = "./data/media"
	DefaultLogDir     = "./data/logs"
)

// 角色
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"

	RoleAdminID uint = 1
	RoleUserID  uint = 2
)

// 访问控制属性
const (
	AnonymousAccess = "IS_AUTHENTICATED_ANONYMOUSLY"
)

// Flash 消息类型
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
)

// Cookie 名称
const (
	AuthCookie  = "portfolio_token"
	FlashCookie = "portfolio_flash"
)

// gin.Context 中的键
const (
	CtxPrincipal = "principal"
	CtxFlashes   = "flashes"
	CtxLang      = "lang"
)

// 上传限制
const (
	MaxPhotoSize    = 2048 * 1000
	PhotoNameLength = 20
)

// 默认分页大小
const DefaultPageSize = 10
