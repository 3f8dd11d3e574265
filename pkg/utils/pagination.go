package utils

// 分页默认值与上限
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination 分页请求参数
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Normalize 纠正越界的分页参数，limit 上限防止一次拉全表
func (p *Pagination) Normalize() {
	if p.Page < DefaultPage {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// PageResult 分页响应结果
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// NewPageResult 组装分页响应
func NewPageResult(list interface{}, total int64, p Pagination) PageResult {
	return PageResult{
		List:  list,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}
