package foundations

// NativeFunc is the implementation of a native function.
type NativeFunc interface {
	Call(args *Args) (Value, error)
}

// NativeFuncFunc adapts a plain Go function to NativeFunc.
type NativeFuncFunc func(args *Args) (Value, error)

// Call calls f(args).
func (f NativeFuncFunc) Call(args *Args) (Value, error) {
	return f(args)
}

// ParamInfo describes a parameter of a native function.
type ParamInfo struct {
	Name       string
	Docs       string
	Input      CastInfo
	Default    Value // nil if the parameter has no default
	Positional bool
	Named      bool
	Variadic   bool
	Required   bool
	Settable   bool
}

// NativeFuncData holds a native function together with its documentation
// and signature.
type NativeFuncData struct {
	Function   NativeFunc
	Name       string
	Title      string
	Docs       string
	Keywords   []string
	Contextual bool
	Params     []ParamInfo
	Returns    CastInfo
}

// Func is a callable function. Two funcs are the same function if they
// share their NativeFuncData.
type Func struct {
	data *NativeFuncData
}

// NewFunc wraps function data into a func.
func NewFunc(data *NativeFuncData) Func {
	return Func{data: data}
}

// IsNil is true for the zero Func.
func (f Func) IsNil() bool {
	return f.data == nil
}

// Data returns the function data of f.
func (f Func) Data() *NativeFuncData {
	return f.data
}

// Name returns the function's name.
func (f Func) Name() string {
	if f.data == nil {
		return "(nil)"
	}
	return f.data.Name
}

// Title returns the function's human readable title.
func (f Func) Title() string {
	if f.data == nil {
		return ""
	}
	return f.data.Title
}

// Docs returns the function's documentation.
func (f Func) Docs() string {
	if f.data == nil {
		return ""
	}
	return f.data.Docs
}

// Params returns the function's parameters.
func (f Func) Params() []ParamInfo {
	if f.data == nil {
		return nil
	}
	return f.data.Params
}

// Param finds a parameter by name.
func (f Func) Param(name string) (ParamInfo, bool) {
	for _, p := range f.Params() {
		if p.Name == name {
			return p, true
		}
	}
	return ParamInfo{}, false
}

// Same is true if f and g are the identical function.
func (f Func) Same(g Func) bool {
	return f.data == g.data
}

// Call calls the function with args. All arguments must be consumed by
// the function, otherwise an ErrUnexpectedArgument error is returned.
func (f Func) Call(args *Args) (Value, error) {
	if f.data == nil || f.data.Function == nil {
		panic("call of nil function")
	}
	tracer().Debugf("call %s%v", f.data.Name, args)
	value, err := f.data.Function.Call(args)
	if err != nil {
		return nil, err
	}
	if err = args.Finish(); err != nil {
		return nil, err
	}
	return value, nil
}
