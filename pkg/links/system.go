package links

import "github.com/mesh-intelligence/quicklinks/pkg/types"

const (
	nasIcon        = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 24 24' width='24' height='24'%3E%3Cpath fill='%23FFA000' d='M10 4H4c-1.1 0-1.99.9-1.99 2L2 18c0 1.1.9 2 2 2h16c1.1 0 2-.9 2-2V8c0-1.1-.9-2-2-2h-8l-2-2z'/%3E%3C/svg%3E"
	teambitionIcon = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAACAAAAAgCAMAAABEpIrGAAAASFBMVEVHcEwwq/oTnfcipPgMmfUNm/YyrfwSnPcZovglp/lGt/1Uvf5twvo/s/yQz/u33v1Muv43r/v////Z7v5Ctf0vq/pJuf5XwP+FeTlMAAAAGHRSTlMATJDF6P8Rov///////////////+n/lsUajDyuAAABKklEQVR4AX3KgZbDEBCF4UtCZ6gkNqLv/6Y71IamOfs5DsyPgdLTbMw8aYUb9mEGD4sLbS40RnY2X2Y7zM0t+/98KGZDsj5RWTMqTcU4bAWRhrB1zM4/C++9C7ysK1VWgkeZP9dlWVqxxfVHGBIPCYiJjXzt+/qutvBTLEYmBChmJgm64FrAxKygWXwGYS9H5EJjYkFjEJ0U+5O4mJCYD+a47mdgmMkYln9ZCXIKJvk7wloDecoS5cQxoBaMkNolyuYaUHtWCVN8O2S3oD3rMSHH7mjBIEN9BRyrULcCQteC/hEDgDy8W9BlCWxoXAuO0FmI7P6EZS+BO2VUqRcxuqXPE97s1jlxPix6ccfiZNPm5Ue2Py/JYpT9RcaF/UiyxQ2VX8n79MoK3S+ypCjWxh6gUgAAAABJRU5ErkJggg=="
)

// systemLinks is the built-in link list in display order. It is never
// mutated; SystemLinks hands out copies.
var systemLinks = []types.Link{
	{ID: "oa", Title: "OA", URL: "https://oa.lal.link/", Icon: "https://oa.lal.link/favicon.ico", IsSystem: true},
	{ID: "contract", Title: "合同助手", URL: "/DocSmart/", Icon: "🌐", IsSystem: true},
	{ID: "translate", Title: "文档翻译", URL: "/DocSmart/translate.html", Icon: "🌍", IsSystem: true},
	{ID: "nas", Title: "NAS", URL: "https://192.168.45.222:5001/", Icon: nasIcon, IsSystem: true},
	{ID: "teambition", Title: "Teambition", URL: "https://www.teambition.com/", Icon: teambitionIcon, IsSystem: true},
	{ID: "models", Title: "模型管理", URL: "/workspace/models", Icon: "🤖", IsSystem: true},
	{ID: "prompts", Title: "提示词库", URL: "/workspace/prompts", Icon: "📝", IsSystem: true},
	{ID: "knowledge", Title: "知识库", URL: "/workspace/knowledge", Icon: "📚", IsSystem: true},
	{ID: "tools", Title: "工具箱", URL: "/workspace/tools", Icon: "🔧", IsSystem: true},
}

// SystemLinks returns a copy of the built-in links in display order.
func SystemLinks() []types.Link {
	out := make([]types.Link, len(systemLinks))
	copy(out, systemLinks)
	return out
}

// IsSystemID reports whether id names a built-in link.
func IsSystemID(id string) bool {
	for _, l := range systemLinks {
		if l.ID == id {
			return true
		}
	}
	return false
}
