// Package docs 提供 swagger 文档注册
// 完整文档由 swag init 生成，这里维护基础 Spec
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {}
}`

// SwaggerInfo 文档元信息
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Food Delivery API",
	Description:      "外卖平台后端：菜单、购物车、订单与托管收银台支付",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

// Register 注册 swagger 文档
func Register() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
