/*
Package chatsdk is a Go client for the wgchat service, and the home of the
wire types the server speaks.

# Overview

A Client holds a cookie jar, so after Register or Login every call it makes
carries the session cookies the server set. The password never leaves the
process: registration and login run the client half of OPAQUE locally and
only exchange protocol messages with the server.

	client := chatsdk.NewClient("https://chat.example.com")

	if err := chatsdk.CheckPassword(password); err != nil {
		return err
	}
	if _, err := client.Register(ctx, "alice", "alice@example.com", password); err != nil {
		return err
	}

	if _, err := client.SetRecipient(ctx, "bob"); err != nil {
		return err
	}
	msg, err := client.Send(ctx, "bob", "hi")

# Events

Subscribe opens the Server-Sent Events stream. The first event is always of
type "self"; message events follow as they are published. A "reconnect"
event means the server is going away and the caller should resubscribe,
passing the ID of the last event it saw.

	stream, err := client.Subscribe(ctx, lastEventID)
	if err != nil {
		return err
	}
	defer stream.Close()

	for {
		ev, err := stream.Next()
		if err != nil {
			return err
		}
		lastEventID = ev.ID
	}

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the service error code. Compare against the predefined values with
errors.Is.
*/
package chatsdk
