package store

import (
	"context"
	"time"
)

// PDFFile is one shared file record. Filename keeps the original display name
// (Korean allowed); DiskFilename is the sanitized object-storage key.
type PDFFile struct {
	ID           int32
	Filename     string
	DiskFilename string
	UploadDate   time.Time
}

// CreateFile inserts a file record and returns it with the assigned id.
func (s *Store) CreateFile(ctx context.Context, filename, diskFilename string) (PDFFile, error) {
	const q = `
		INSERT INTO pdf_file (filename, disk_filename)
		VALUES ($1, $2)
		RETURNING id, filename, disk_filename, upload_date`

	var f PDFFile
	err := s.pool.QueryRow(ctx, q, filename, diskFilename).
		Scan(&f.ID, &f.Filename, &f.DiskFilename, &f.UploadDate)
	return f, err
}

// ListFiles returns every file record, newest first.
func (s *Store) ListFiles(ctx context.Context) ([]PDFFile, error) {
	const q = `
		SELECT id, filename, disk_filename, upload_date
		FROM pdf_file
		ORDER BY upload_date DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []PDFFile
	for rows.Next() {
		var f PDFFile
		if err := rows.Scan(&f.ID, &f.Filename, &f.DiskFilename, &f.UploadDate); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// GetFile returns one file record by id.
func (s *Store) GetFile(ctx context.Context, id int32) (PDFFile, error) {
	const q = `
		SELECT id, filename, disk_filename, upload_date
		FROM pdf_file
		WHERE id = $1`

	var f PDFFile
	err := s.pool.QueryRow(ctx, q, id).
		Scan(&f.ID, &f.Filename, &f.DiskFilename, &f.UploadDate)
	return f, err
}

// DeleteFile removes a file record by id.
func (s *Store) DeleteFile(ctx context.Context, id int32) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM pdf_file WHERE id = $1`, id)
	return err
}
