/*
Package hub is the publish/subscribe fan-out for live tally observers.

Subscribers get a buffered channel of Messages. Publishing is fire-and-
forget: a subscriber whose buffer is full loses that message instead of
blocking the publisher, so broadcast can never stall the vote transaction.

Three message types exist: "tally-changed" carries a full snapshot,
"vote-cast" a single vote event, and "reset" announces that the tally was
cleared (the empty snapshot follows as a separate "tally-changed").

The hub does not know about transports. The websocket handler in package
handlers pumps hub messages onto connections and unsubscribes on
disconnect.
*/
package hub
