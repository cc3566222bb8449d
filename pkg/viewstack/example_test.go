package viewstack_test

import (
	"fmt"

	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/view"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/viewtest"
)

// Example wires an engine, opens two views, and swaps scenes so the
// scene-cached view is disposed while the shared one survives.
func Example() {
	engine, err := viewstack.Init(viewstack.Options{
		Loader: viewtest.NewLoader(),
		Logger: quietLogger(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	engine.Scenes.Goto(newLevel("title"))
	engine.Scenes.Tick()

	pause := view.NewDescriptor("ui/pause")
	chat := view.NewDescriptor("ui/chat", view.WithCache(view.CacheShared))
	engine.Views.Open(pause)
	engine.Views.Open(chat)
	for _, v := range engine.Views.Views() {
		fmt.Println("open:", v.Descriptor(), engine.Views.Focused(v))
	}

	engine.Views.CloseAll()
	engine.Scenes.Goto(newLevel("stage-1"))
	engine.Scenes.Tick()

	for _, v := range engine.Views.Cached() {
		fmt.Println("cached:", v.Descriptor())
	}
	fmt.Println("scene:", engine.Scenes.Current().Name())

	// Output:
	// open: ui/pause false
	// open: ui/chat true
	// cached: ui/chat
	// scene: stage-1
}
