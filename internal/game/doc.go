// Package game is the controller of the application. It owns the current
// screen, the active learning or quiz session, the player's progress and
// the parental gate overlay.
//
// App.Handle is the single entry point. It applies an Event to the state
// and returns the side effects to perform as Commands (speak, save,
// translate, schedule a later event). App itself performs no I/O, so the
// whole flow can be tested without audio, network or storage.
package game
