package v1handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"yokeair/pkg/assets"
	"yokeair/pkg/serrors"
)

// readFiles parses a multipart body and returns the files sent under field.
func (h Handler) readFiles(w http.ResponseWriter, r *http.Request, field string) ([]assets.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, serrors.Invalid(serrors.FieldError{
				Field:   field,
				Message: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
			})
		}

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart body")
	}

	headers := r.MultipartForm.File[field]
	files := make([]assets.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

// readFile returns the single file sent under field.
func (h Handler) readFile(w http.ResponseWriter, r *http.Request, field string) (assets.File, error) {
	files, err := h.readFiles(w, r, field)
	if err != nil {
		return assets.File{}, err
	}
	if len(files) != 1 {
		return assets.File{}, serrors.Invalid(serrors.FieldError{Field: field, Message: "exactly one file is required"})
	}

	return files[0], nil
}

func readFile(fh *multipart.FileHeader) (assets.File, error) {
	f, err := fh.Open()
	if err != nil {
		return assets.File{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not open %q", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return assets.File{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not read %q", fh.Filename)
	}

	return assets.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
