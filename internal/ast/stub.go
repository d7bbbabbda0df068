package ast

// The Stub* types below are minimal, concrete implementations of this
// package's collaborator interfaces. They stand in for a real
// parser/binder in tests: this core never constructs them on a real
// compilation path, it only accepts whatever a later pass hands it.

// StubFunction implements FunctionDefinition.
type StubFunction struct {
	NodeID_     NodeID
	Name_       string
	Params      []Parameter
	Returns     []Parameter
	Visibility_ Visibility
}

func (f *StubFunction) ID() NodeID                    { return f.NodeID_ }
func (f *StubFunction) Name() string                  { return f.Name_ }
func (f *StubFunction) Parameters() []Parameter       { return f.Params }
func (f *StubFunction) ReturnParameters() []Parameter { return f.Returns }
func (f *StubFunction) Visibility() Visibility        { return f.Visibility_ }

// StubVariable implements VariableDeclaration.
type StubVariable struct {
	NodeID_   NodeID
	Name_     string
	TypeName_ string
	Public    bool
}

func (v *StubVariable) ID() NodeID       { return v.NodeID_ }
func (v *StubVariable) Name() string     { return v.Name_ }
func (v *StubVariable) TypeName() string { return v.TypeName_ }
func (v *StubVariable) IsPublic() bool   { return v.Public }

// StubEvent implements EventDefinition.
type StubEvent struct {
	NodeID_ NodeID
	Name_   string
	Params  []Parameter
}

func (e *StubEvent) ID() NodeID              { return e.NodeID_ }
func (e *StubEvent) Name() string            { return e.Name_ }
func (e *StubEvent) Parameters() []Parameter { return e.Params }

// StubFunctionTypeName implements FunctionTypeName.
type StubFunctionTypeName struct {
	NodeID_     NodeID
	Params      []Parameter
	Returns     []Parameter
	Visibility_ Visibility
}

func (f *StubFunctionTypeName) ID() NodeID                    { return f.NodeID_ }
func (f *StubFunctionTypeName) Parameters() []Parameter       { return f.Params }
func (f *StubFunctionTypeName) ReturnParameters() []Parameter { return f.Returns }
func (f *StubFunctionTypeName) Visibility() Visibility        { return f.Visibility_ }

// StubContract implements ContractDefinition.
type StubContract struct {
	NodeID_ NodeID
	Name_   string
}

func (c *StubContract) ID() NodeID   { return c.NodeID_ }
func (c *StubContract) Name() string { return c.Name_ }

// StubStruct implements StructDefinition.
type StubStruct struct {
	NodeID_  NodeID
	Name_    string
	Members_ []VariableDeclaration
}

func (s *StubStruct) ID() NodeID                     { return s.NodeID_ }
func (s *StubStruct) Name() string                   { return s.Name_ }
func (s *StubStruct) Members() []VariableDeclaration { return s.Members_ }

// StubEnum implements EnumDefinition.
type StubEnum struct {
	NodeID_  NodeID
	Name_    string
	Members_ []string
}

func (e *StubEnum) ID() NodeID         { return e.NodeID_ }
func (e *StubEnum) Name() string       { return e.Name_ }
func (e *StubEnum) Members() []string  { return e.Members_ }

// StubModifier implements ModifierDefinition.
type StubModifier struct {
	NodeID_ NodeID
	Name_   string
	Params  []Parameter
}

func (m *StubModifier) ID() NodeID              { return m.NodeID_ }
func (m *StubModifier) Name() string            { return m.Name_ }
func (m *StubModifier) Parameters() []Parameter { return m.Params }

// StubSourceUnit implements SourceUnit.
type StubSourceUnit struct {
	NodeID_ NodeID
	Path_   string
}

func (s *StubSourceUnit) ID() NodeID   { return s.NodeID_ }
func (s *StubSourceUnit) Path() string { return s.Path_ }
