/*
Package dashsdk is a Go client for the labdash dashboard API.

It does what the dashboard's browser glue does: checks the session, reads the
visible modules, and submits the profile forms. It also wraps the user
administration endpoints.

	c, err := dashsdk.NewClient("https://labdash.example.com")
	sess, err := c.Login(ctx, "ana@lab.example", "secret")
	if sess.CanSee("calibracion") {
		// ...
	}

	cards := sess.ApplyVisibility(dashsdk.DefaultCards())

Writes carry the CSRF token the server returns on reads, so call Login or
Session before any POST. Server errors come back as *APIError.
*/
package dashsdk
