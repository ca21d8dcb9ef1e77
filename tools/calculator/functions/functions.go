// Package functions holds the math functions callable from calculator expressions.
package functions

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Functions is the function table handed to govaluate
var Functions = map[string]govaluate.ExpressionFunction{
	"sqrt":  unary("sqrt", math.Sqrt),
	"abs":   unary("abs", math.Abs),
	"floor": unary("floor", math.Floor),
	"ceil":  unary("ceil", math.Ceil),
	"round": unary("round", math.Round),
	"ln":    unary("ln", math.Log),
	"log":   unary("log", math.Log10),
	"log2":  unary("log2", math.Log2),
	"exp":   unary("exp", math.Exp),
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"pow":   binary("pow", math.Pow),
	"min":   variadic("min", math.Min),
	"max":   variadic("max", math.Max),
}

func toFloat(name string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%s: expecting a number, got %T", name, v)
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: expecting 1 argument, got %d", name, len(args))
		}
		x, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}

func binary(name string, fn func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s: expecting 2 arguments, got %d", name, len(args))
		}
		x, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		y, err := toFloat(name, args[1])
		if err != nil {
			return nil, err
		}
		return fn(x, y), nil
	}
}

func variadic(name string, fn func(float64, float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s: expecting at least 1 argument", name)
		}
		ret, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, arg := range args[1:] {
			x, err := toFloat(name, arg)
			if err != nil {
				return nil, err
			}
			ret = fn(ret, x)
		}
		return ret, nil
	}
}
