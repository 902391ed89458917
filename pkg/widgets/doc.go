// Package widgets provides a small set of controlled nodes with bindable
// attributes: scroll views, labels, tab bars, text inputs, plus the lens
// and identity wrappers that adapt subtrees between data types.
//
// Each widget that owns bindable state implements bind.Bindable and ships
// factory functions for its properties, so a binding is assembled as
//
//	bind.NewHost[App, widgets.ScrollView[App]](scroll,
//		bind.Bind(offsetLens, widgets.ScrollOffsetProperty[App]()))
//
// Wrappers delegate bindable reach to their child, letting hosts target a
// widget through any chain of trivial wrappers.
package widgets
