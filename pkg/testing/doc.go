// Package testing provides a harness for exercising bound node trees in
// unit tests.
//
// # Quick Start
//
// Create a tester, pump a tree, and make assertions:
//
//	func TestCounter(t *testing.T) {
//	    tester := bindtest.NewTreeTesterWithT[App](t)
//	    tester.PumpNode(buildTree(), App{Count: 1})
//
//	    tester.Tap(graphics.Offset{X: 10, Y: 10})
//	    if err := tester.PumpAndSettle(4); err != nil {
//	        t.Fatal(err)
//	    }
//	    if tester.Data().Count != 2 {
//	        t.Error("tap did not reach data")
//	    }
//	}
//
// # Frame Assertions
//
// The latest painted frame is available as a display list, as text lookup,
// or rasterized to an image:
//
//	if !tester.FindText("hello") {
//	    t.Error("expected 'hello' in the frame")
//	}
//	img := tester.Rasterize()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import bindtest "github.com/go-drift/bindings/pkg/testing"
package testing
