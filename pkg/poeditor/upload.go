package poeditor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
)

// uploadPart is one field of the multipart upload body. The file part
// carries no value; its content is streamed from the request's path.
type uploadPart struct {
	name  string
	value string
	file  bool
}

// parts lists the multipart fields of r in wire order. Optional fields that
// are unset are left out.
func (r UploadProjectRequest) parts() ([]uploadPart, error) {
	parts := []uploadPart{
		{name: "id", value: strconv.Itoa(r.ID)},
		{name: "updating", value: string(r.Updating)},
		{name: "file", file: true},
	}

	if r.Language != "" {
		parts = append(parts, uploadPart{name: "language", value: r.Language})
	}
	if r.Overwrite != nil {
		parts = append(parts, uploadPart{name: "overwrite", value: r.Overwrite.String()})
	}
	if r.SyncTerms != nil {
		parts = append(parts, uploadPart{name: "sync_terms", value: r.SyncTerms.String()})
	}
	if r.Tags != nil {
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		parts = append(parts, uploadPart{name: "tags", value: string(tags)})
	}
	if r.ReadFromSource != nil {
		parts = append(parts, uploadPart{name: "read_from_source", value: r.ReadFromSource.String()})
	}
	if r.FuzzyTrigger != nil {
		parts = append(parts, uploadPart{name: "fuzzy_trigger", value: r.FuzzyTrigger.String()})
	}

	return parts, nil
}

// UploadProject imports a translation file into a project. This is the only
// endpoint that takes a multipart body; its result is the statistics object
// itself rather than a nested field.
// https://poeditor.com/docs/api#projects_upload
func (c *Client) UploadProject(ctx context.Context, req UploadProjectRequest) (*UpdateStatistics, error) {
	parts, err := req.parts()
	if err != nil {
		return nil, err
	}

	file, err := c.fs.Open(req.File)
	if err != nil {
		return nil, &TransportError{Path: pathProjectsUpload, Err: fmt.Errorf("failed to open upload file: %w", err)}
	}

	if c.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.uploadTimeout)
		defer cancel()
	}

	pr, pw := io.Pipe()
	defer pr.Close()
	mw := multipart.NewWriter(pw)

	go func() {
		defer file.Close()
		pw.CloseWithError(c.writeUpload(mw, parts, filepath.Base(req.File), file))
	}()

	c.logger.Debug("uploading file", "project", req.ID, "file", req.File, "updating", req.Updating)

	raw, err := c.send(ctx, pathProjectsUpload, mw.FormDataContentType(), pr)
	if err != nil {
		return nil, err
	}

	res, err := decode[UpdateStatistics](c, pathProjectsUpload, raw)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) writeUpload(mw *multipart.Writer, parts []uploadPart, filename string, file io.Reader) error {
	if err := mw.WriteField(tokenField, c.token); err != nil {
		return err
	}

	for _, p := range parts {
		if !p.file {
			if err := mw.WriteField(p.name, p.value); err != nil {
				return err
			}
			continue
		}

		w, err := mw.CreateFormFile(p.name, filename)
		if err != nil {
			return err
		}
		if _, err := io.Copy(w, file); err != nil {
			return fmt.Errorf("failed to stream upload file: %w", err)
		}
	}

	return mw.Close()
}
