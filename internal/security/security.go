// Package security holds the access rules, role hierarchy and principal types
// shared by the authentication middleware and the controllers.
package security

import (
	"regexp"

	"github.com/kdam/portfolio/internal/constant"
)

// Credentials 登录时按用户名加载的凭据
type Credentials struct {
	ID       uint
	Login    string
	Password string
	Roles    []string
}

// Principal 当前请求的已认证用户
type Principal struct {
	ID    uint
	Login string
	Roles []string
}

// NewPrincipal 由凭据构造 Principal，不携带密码哈希
func NewPrincipal(c *Credentials) *Principal {
	return &Principal{ID: c.ID, Login: c.Login, Roles: c.Roles}
}

// IsGranted 判断是否具有角色（考虑角色继承）
func (p *Principal) IsGranted(role string) bool {
	if p == nil {
		return role == constant.AnonymousAccess
	}
	if role == constant.AnonymousAccess {
		return true
	}
	for _, r := range ExpandRoles(p.Roles) {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin 是否管理员
func (p *Principal) IsAdmin() bool {
	return p.IsGranted(constant.RoleAdmin)
}

// Hierarchy 角色继承表：键角色隐含值中的角色
var Hierarchy = map[string][]string{
	constant.RoleAdmin: {constant.RoleUser},
}

// ExpandRoles 按继承表展开角色，结果不重复
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool)
	var out []string
	var walk func(r string)
	walk = func(r string) {
		if seen[r] {
			return
		}
		seen[r] = true
		out = append(out, r)
		for _, implied := range Hierarchy[r] {
			walk(implied)
		}
	}
	for _, r := range roles {
		walk(r)
	}
	return out
}

// Rule 一条访问规则：路径正则与所需属性
type Rule struct {
	Pattern   *regexp.Regexp
	Attribute string
}

// Rules 有序规则表，自上而下首个匹配生效
type Rules []Rule

// DefaultRules 站点的访问规则
func DefaultRules() Rules {
	return Rules{
		{regexp.MustCompile(`^/auth.+$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/(media|static)/.*$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/menu/.*$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/(contact|register|road-to-nowhere)$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/page/view/.*$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/portfolio/?$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/user/add$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/user/view$`), constant.RoleUser},
		{regexp.MustCompile(`^/user/edit.*$`), constant.RoleUser},
		{regexp.MustCompile(`^/comment/index$`), constant.AnonymousAccess},
		{regexp.MustCompile(`^/comment/add$`), constant.RoleUser},
		{regexp.MustCompile(`^/.+$`), constant.RoleAdmin},
	}
}

// Required 返回路径所需属性，无匹配时为匿名
func (rs Rules) Required(path string) string {
	for _, r := range rs {
		if r.Pattern.MatchString(path) {
			return r.Attribute
		}
	}
	return constant.AnonymousAccess
}

// Decision 访问决策
type Decision int

const (
	Allow Decision = iota
	// 匿名访问受保护路径
	LoginRequired
	// 已登录但角色不足
	Forbidden
)

// Decide 对路径和当前用户做出访问决策
func (rs Rules) Decide(path string, p *Principal) Decision {
	required := rs.Required(path)
	if required == constant.AnonymousAccess {
		return Allow
	}
	if p == nil {
		return LoginRequired
	}
	if p.IsGranted(required) {
		return Allow
	}
	return Forbidden
}
