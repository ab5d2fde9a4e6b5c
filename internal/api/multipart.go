package api

import (
	"bytes"
	"io"
	"mime/multipart"
)

// buildMultipart arma un body multipart/form-data con campos de texto y
// un archivo opcional (los formularios de libro y perfil suben imagen).
func buildMultipart(fields map[string]string, fileField, fileName string, file io.Reader) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if file != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, file); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
