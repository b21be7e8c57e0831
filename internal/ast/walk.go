package ast

// Visitor is a visitor for walking the AST.
type Visitor interface {
	// Visit is called for every node. If the result is not nil, the children
	// of the node are walked with the returned visitor, followed by a call of
	// Visit(nil) on it.
	Visit(node Node) Visitor
}

// Walk traverses the AST in depth-first order.
func Walk(v Visitor, node Node) {
	if v := v.Visit(node); v != nil {
		node.WalkChildren(v)
		v.Visit(nil)
	}
}
