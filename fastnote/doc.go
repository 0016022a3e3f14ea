// Package fastnote is a typed client for the Fast Note Sync Service REST
// API. It covers all twenty documented endpoints: registration and login,
// vault and note CRUD, note histories with diffs, raw file download, and the
// WebGUI/admin configuration surface.
//
//	c := fastnote.New("http://localhost:9000")
//	if _, err := c.Login(ctx, "admin", "password123"); err != nil {
//		return err
//	}
//	notes, err := c.ListNotes(ctx, "my-vault", nil)
//
// Application failures are *apierr.Error values and can be matched against
// the apierr sentinels with errors.Is. Transport failures (non-2xx status or
// network errors) never reach the application taxonomy: they surface as a
// *StatusError or a wrapped network error.
package fastnote
