package calculator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/bububa/react-agents/schema"
	"github.com/bububa/react-agents/tools"
	"github.com/bububa/react-agents/tools/calculator/functions"
)

const (
	DefaultTitle       = "Calculator"
	DefaultDescription = "Evaluates a single mathematical expression such as '2 + 2' or 'sqrt(16) * pi'. Input must be the expression only."
)

// Input Tool for performing calculations. Supports basic arithmetic operations
// like addition, subtraction, multiplication, and division, as well as
// exponentiation (**) and functions such as sqrt, pow, ln and sin.
type Input struct {
	// Expression Mathematical expression to evaluate. For example, '2 + 2'.
	Expression string `json:"expression" jsonschema:"title=expression,description=Mathematical expression to evaluate. For example, '2 + 2'."`
	// Params represents expressions's parameters
	Params map[string]interface{} `json:"params,omitempty" jsonschema:"title=params,description=Parameters for the expression."`
}

func NewInput(exp string, params map[string]interface{}) *Input {
	return &Input{
		Expression: exp,
		Params:     params,
	}
}

// Output Schema for the output of the CalculatorTool
type Output struct {
	schema.Base
	// Result Result of the calculation
	Result interface{} `json:"result,omitempty" jsonschema:"title=result,description=Result of the calculation."`
}

func NewOutput(result interface{}) *Output {
	return &Output{
		Result: result,
	}
}

// String formats the result without trailing zeros
func (o Output) String() string {
	return FormatResult(o.Result)
}

// FormatResult renders an evaluation result as observation text
func FormatResult(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(n)
	case string:
		return n
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

type Tool struct {
	tools.Config
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle(DefaultTitle)
	}
	if ret.Description() == "" {
		ret.SetDescription(DefaultDescription)
	}
	return ret
}

// Run evaluates the expression with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	exp, err := govaluate.NewEvaluableExpressionWithFunctions(input.Expression, functions.Functions)
	if err != nil {
		return nil, err
	}
	params := make(map[string]interface{}, len(input.Params)+len(constParams))
	for k, v := range input.Params {
		params[k] = v
	}
	for k, v := range constParams {
		if _, ok := params[k]; ok {
			continue
		}
		params[k] = v
	}
	result, err := exp.Evaluate(params)
	if err != nil {
		return nil, err
	}
	return NewOutput(result), nil
}

// Spec exposes the calculator to the dispatch loop; the action input is the expression
func (t *Tool) Spec() tools.ToolSpec {
	return t.Config.Spec(func(ctx context.Context, input string) (string, error) {
		exp := CleanExpression(input)
		if exp == "" {
			return "", fmt.Errorf("%w: empty expression", tools.ErrInvalidInput)
		}
		ret, err := t.Run(ctx, NewInput(exp, nil))
		if err != nil {
			return "", err
		}
		return schema.Stringify(ret), nil
	})
}

// CleanExpression strips code fences, backticks and a trailing '=' models often add
func CleanExpression(input string) string {
	exp := strings.TrimSpace(input)
	exp = strings.TrimPrefix(exp, "```text")
	exp = strings.Trim(exp, "`")
	exp = strings.TrimSpace(exp)
	exp = strings.TrimSuffix(exp, "=")
	return strings.TrimSpace(exp)
}
