package scaffold

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
)

const placeholder = "xxx"

// packageName turns a module name into a valid package clause.
func packageName(module string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(module) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// genModuleConfig renders the placeholder config.go of a new module.
func genModuleConfig(module string) ([]byte, error) {
	f := jen.NewFile(packageName(module))

	f.Comment("ModuleConfig 模块配置")
	f.Type().Id("ModuleConfig").Struct(
		jen.Comment("模块名称"),
		jen.Id("Name").String(),
		jen.Comment("模块描述"),
		jen.Id("Description").String(),
		jen.Comment("中间件，只对本模块有效"),
		jen.Id("Middlewares").Index().String(),
		jen.Comment("中间件，全局有效"),
		jen.Id("GlobalMiddlewares").Index().String(),
		jen.Comment("模块加载顺序，默认为0，值越大越优先加载"),
		jen.Id("Order").Int(),
	)
	f.Line()

	f.Comment("Config returns the configuration of the module.")
	f.Func().Id("Config").Params().Id("ModuleConfig").Block(
		jen.Return(jen.Id("ModuleConfig").Values(jen.Dict{
			jen.Id("Name"):              jen.Lit(placeholder),
			jen.Id("Description"):       jen.Lit(placeholder),
			jen.Id("Middlewares"):       jen.Index().String().Values(),
			jen.Id("GlobalMiddlewares"): jen.Index().String().Values(),
			jen.Id("Order"):             jen.Lit(0),
		})),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
