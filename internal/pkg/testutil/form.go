package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// PhotoForm describes a multipart photo upload request body
type PhotoForm struct {
	FileName    string
	ContentType string
	Content     []byte
	Description string
	Tags        []string
}

// CreatePhotoUploadBody encodes form as multipart/form-data and returns the body
// together with the Content-Type header value.
func CreatePhotoUploadBody(t *testing.T, form PhotoForm) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if form.FileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, form.FileName))
		header.Set("Content-Type", form.ContentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(form.Content)
		require.NoError(t, err)
	}

	if form.Description != "" {
		require.NoError(t, writer.WriteField("description", form.Description))
	}
	for _, tag := range form.Tags {
		require.NoError(t, writer.WriteField("tags", tag))
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
