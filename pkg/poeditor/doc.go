// Package poeditor is a typed client for the POEditor API v2.
//
// Every endpoint is a POST with an x-www-form-urlencoded body carrying the
// api_token. Responses share one envelope:
//
//	{
//	  "response": {"status": "success", "code": "200", "message": "OK"},
//	  "result": { ... }
//	}
//
// A status other than "success" is returned as an *OperationFailedError whose
// Error() is the remote message, unchanged. Anything that goes wrong before an
// envelope could be read (network, timeout, non-JSON body) is a *TransportError.
//
// The one exception to the form encoding is UploadProject, which sends a
// multipart body with the file streamed from the configured afero.Fs.
//
// Usage:
//
//	client, err := poeditor.New(poeditor.Config{APIToken: os.Getenv("POEDITOR_API_TOKEN")})
//	if err != nil {
//		return err
//	}
//	projects, err := client.ListProjects(ctx)
//
// The client keeps no state besides its configuration and is safe for
// concurrent use. It never retries.
package poeditor
