package stdlib

import (
	"github.com/leonardinius/pepl/internal/jsoncodec"
	"github.com/leonardinius/pepl/internal/module"
	"github.com/leonardinius/pepl/internal/value"
)

// NewJSON builds the json module. parse answers Ok(value) or Err(message).
func NewJSON() module.Module {
	return module.NewTable("json", map[string]module.Function{
		"parse":     {Arity: module.Exactly(1), Fn: jsonParse},
		"stringify": {Arity: module.Exactly(1), Fn: jsonStringify},
	})
}

func jsonParse(args []value.Value) (value.Value, error) {
	text, err := module.StringArg("json.parse", args, 1)
	if err != nil {
		return nil, err
	}
	v, err := jsoncodec.Parse(text)
	if err != nil {
		return value.Err(value.String(err.Error())), nil
	}
	return value.Ok(v), nil
}

func jsonStringify(args []value.Value) (value.Value, error) {
	return value.String(jsoncodec.Stringify(args[0])), nil
}
