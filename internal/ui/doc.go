// Package ui implements the terminal interface for trolley using Bubble Tea.
//
// # Architecture
//
// The UI follows the Elm architecture as implemented by Bubble Tea. A single
// Model holds all view state; Update reacts to messages and View rebuilds the
// entire screen from the product cache on every render. There is no
// incremental diffing and no view-side copy of the list: every frame reads
// the cache through the controller, so a render can never disagree with it.
//
// # Views and overlays
//
// Two primary views exist, selected by Mode: the browse list and the add/edit
// form. Three overlays can cover either view and capture all input while
// visible:
//
//   - the delete confirmation, which holds the doomed product until the user
//     answers yes or no
//   - the failure notice, a blocking banner dismissed by any key
//   - the help screen
//
// # Server operations
//
// Anything that talks to the API runs as a tea.Cmd off the update loop and
// reports back with an opDoneMsg. The cache mutation itself happens inside
// the controller before the message arrives, so by the time Update sees a
// successful opDoneMsg the next render already shows the new state. On
// failure the message carries the controller's user-facing notice.
//
// Operations are not serialized. A second keypress while a request is in
// flight starts a second request; responses apply in arrival order.
//
// # Theming
//
// Three built-in color themes cycle with T and persist through the prefs
// package. All colors flow through Theme and its derived Styles so no view
// code names a color directly.
package ui
