package filestorage

import "mime/multipart"

// Storage abstracts where uploaded files live. Stored files are addressed
// by the URL returned from Save.
type Storage interface {
	// Save stores an uploaded file under the given subdirectory and returns
	// the URL it is reachable at. A nil file header is a no-op.
	Save(fileHeader *multipart.FileHeader, subPath string) (string, error)
	// Delete removes a previously stored file by its URL. Deleting a file
	// that no longer exists is not an error.
	Delete(fileURL string) error
}
