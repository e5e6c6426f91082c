package bound

import "github.com/HicaroD/mangle/internal/symbols"

type Stmt interface {
	Node
	stmtNode()
}

type BlockStmt struct {
	Statements []Stmt
}

func (block *BlockStmt) Kind() NodeKind { return KIND_BLOCK_STMT }
func (block *BlockStmt) stmtNode()      {}

type VarDecl struct {
	Variable *symbols.VariableSymbol
	Init     Expr
}

func (decl *VarDecl) Kind() NodeKind { return KIND_VAR_DECL }
func (decl *VarDecl) stmtNode()      {}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil when there is no else branch
}

func (cond *IfStmt) Kind() NodeKind { return KIND_IF_STMT }
func (cond *IfStmt) stmtNode()      {}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (loop *WhileStmt) Kind() NodeKind { return KIND_WHILE_STMT }
func (loop *WhileStmt) stmtNode()      {}

type ForStmt struct {
	Decl Stmt
	Cond Expr
	Incr Expr
	Body Stmt
}

func (loop *ForStmt) Kind() NodeKind { return KIND_FOR_STMT }
func (loop *ForStmt) stmtNode()      {}

// Label is compared by pointer. Name is only used when printing.
type Label struct {
	Name string
}

func NewLabel(name string) *Label { return &Label{Name: name} }

func (label *Label) String() string { return label.Name }

type LabelStmt struct {
	Label *Label
}

func (stmt *LabelStmt) Kind() NodeKind { return KIND_LABEL_STMT }
func (stmt *LabelStmt) stmtNode()      {}

type GotoStmt struct {
	Label *Label
}

func (stmt *GotoStmt) Kind() NodeKind { return KIND_GOTO_STMT }
func (stmt *GotoStmt) stmtNode()      {}

// CondGotoStmt jumps to Label when Cond evaluates to JumpIfTrue.
type CondGotoStmt struct {
	Label      *Label
	Cond       Expr
	JumpIfTrue bool
}

func (stmt *CondGotoStmt) Kind() NodeKind { return KIND_COND_GOTO_STMT }
func (stmt *CondGotoStmt) stmtNode()      {}

// ExprStmt evaluates Expr. Unless Discard is set its value becomes the value
// of the program so far.
type ExprStmt struct {
	Expr    Expr
	Discard bool
}

func (stmt *ExprStmt) Kind() NodeKind { return KIND_EXPR_STMT }
func (stmt *ExprStmt) stmtNode()      {}
