package scripting

import (
	"context"

	"github.com/dop251/goja"

	"transform2d/geom"
)

type GojaEngine struct {
	vm *goja.Runtime
}

func NewEngine() *GojaEngine {
	vm := goja.New()
	return &GojaEngine{vm: vm}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

// RegisterGeometry exposes the geometry API to scripts:
//
//	print(msg)            narration line
//	shape(rows, label)    new shape from [[x, y], ...]
//
// Shape objects carry translate/scale/scaleXY/rotate/reflect/shear
// methods (each returning a new shape object), plus points() and label.
// Invalid axis or direction tags and malformed rows throw.
func (e *GojaEngine) RegisterGeometry(api GeometryAPI) error {
	if err := e.vm.Set("print", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		api.Log(msg)
		return goja.Undefined()
	}); err != nil {
		return err
	}

	return e.vm.Set("shape", func(call goja.FunctionCall) goja.Value {
		var rows [][]float64
		if err := e.vm.ExportTo(call.Argument(0), &rows); err != nil {
			panic(e.vm.NewGoError(err))
		}
		label := "shape"
		if len(call.Arguments) > 1 {
			label = call.Arguments[1].String()
		}
		s, err := api.NewShape(rows, label)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.shapeObject(s)
	})
}

// shapeObject wraps an immutable shape in a JS object; every transform
// method returns a fresh wrapper, mirroring the Go API.
func (e *GojaEngine) shapeObject(s geom.Shape) *goja.Object {
	obj := e.vm.NewObject()
	must := func(err error) {
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
	}

	must(obj.Set("label", s.Label()))

	must(obj.Set("points", func(call goja.FunctionCall) goja.Value {
		pts := s.Points()
		rows := make([][]float64, len(pts))
		for i, p := range pts {
			rows[i] = []float64{p.X, p.Y}
		}
		return e.vm.ToValue(rows)
	}))

	must(obj.Set("translate", func(call goja.FunctionCall) goja.Value {
		dx := call.Argument(0).ToFloat()
		dy := call.Argument(1).ToFloat()
		return e.shapeObject(s.Translate(dx, dy))
	}))

	must(obj.Set("scale", func(call goja.FunctionCall) goja.Value {
		factor := call.Argument(0).ToFloat()
		return e.shapeObject(s.Scale(factor, e.originArg(call, 1)))
	}))

	must(obj.Set("scaleXY", func(call goja.FunctionCall) goja.Value {
		sx := call.Argument(0).ToFloat()
		sy := call.Argument(1).ToFloat()
		return e.shapeObject(s.ScaleXY(sx, sy, e.originArg(call, 2)))
	}))

	must(obj.Set("rotate", func(call goja.FunctionCall) goja.Value {
		deg := call.Argument(0).ToFloat()
		return e.shapeObject(s.Rotate(deg, e.originArg(call, 1)))
	}))

	must(obj.Set("reflect", func(call goja.FunctionCall) goja.Value {
		axis, err := geom.ParseAxis(call.Argument(0).String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		out, err := s.Reflect(axis)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.shapeObject(out)
	}))

	must(obj.Set("shear", func(call goja.FunctionCall) goja.Value {
		k := call.Argument(0).ToFloat()
		dir, err := geom.ParseShearDirection(call.Argument(1).String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		out, err := s.ShearBy(k, dir)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.shapeObject(out)
	}))

	return obj
}

// originArg reads an optional [x, y] pivot argument; missing means the
// world origin.
func (e *GojaEngine) originArg(call goja.FunctionCall, idx int) geom.Point {
	arg := call.Argument(idx)
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		return geom.Point{}
	}
	var pair []float64
	if err := e.vm.ExportTo(arg, &pair); err != nil || len(pair) != 2 {
		panic(e.vm.NewGoError(geom.ErrInvalidArgument))
	}
	return geom.Point{X: pair[0], Y: pair[1]}
}
