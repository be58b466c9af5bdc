package usecase

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const backupManifestName = "manifest.json"

// backupDirs lists the data subtrees worth archiving. Reference tables in
// handmade/ are maintained by hand and restored from their own source, so
// only engine-owned and uploaded data travels in a backup.
var backupDirs = []string{"processed", "source"}

// BackupManifest travels inside each archive and identifies it on restore.
type BackupManifest struct {
	ArchiveID string    `json:"archiveId"`
	CreatedAt time.Time `json:"createdAt"`
	FileCount int       `json:"fileCount"`
}

// BackupService archives the engine-owned data files into a zip and restores
// them from one. Restores overwrite whole files, never merge.
type BackupService struct {
	dataDir   string
	backupDir string
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

func NewBackupService(dataDir, backupDir string, logger *slog.Logger) *BackupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BackupService{
		dataDir:   dataDir,
		backupDir: backupDir,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Export writes a zip archive of the engine-owned data and returns the
// manifest plus the archive path.
func (s *BackupService) Export(ctx context.Context) (*BackupManifest, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackupService.Export")
	defer span.End()

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create backup dir: %w", err)
	}

	manifest := &BackupManifest{
		ArchiveID: s.newID(),
		CreatedAt: s.now().UTC(),
	}
	archivePath := filepath.Join(s.backupDir, fmt.Sprintf("league-%s-%s.zip",
		manifest.CreatedAt.Format("20060102-150405"), manifest.ArchiveID))

	archive, err := os.Create(archivePath)
	if err != nil {
		return nil, "", fmt.Errorf("create archive: %w", err)
	}
	defer archive.Close()

	writer := zip.NewWriter(archive)
	for _, dir := range backupDirs {
		root := filepath.Join(s.dataDir, dir)
		if _, statErr := os.Stat(root); errors.Is(statErr, fs.ErrNotExist) {
			continue
		}
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || strings.HasSuffix(path, ".lock") {
				return nil
			}
			rel, err := filepath.Rel(s.dataDir, path)
			if err != nil {
				return err
			}
			if err := s.addFile(writer, filepath.ToSlash(rel), path); err != nil {
				return err
			}
			manifest.FileCount++
			return nil
		})
		if err != nil {
			writer.Close()
			return nil, "", fmt.Errorf("archive %s: %w", dir, err)
		}
	}

	manifestBytes, err := sonic.Marshal(manifest)
	if err != nil {
		writer.Close()
		return nil, "", fmt.Errorf("encode manifest: %w", err)
	}
	entry, err := writer.Create(backupManifestName)
	if err != nil {
		writer.Close()
		return nil, "", fmt.Errorf("create manifest entry: %w", err)
	}
	if _, err := entry.Write(manifestBytes); err != nil {
		writer.Close()
		return nil, "", fmt.Errorf("write manifest: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize archive: %w", err)
	}

	s.logger.InfoContext(ctx, "backup exported",
		"archive_id", manifest.ArchiveID, "files", manifest.FileCount, "path", archivePath)
	return manifest, archivePath, nil
}

// Import restores data files from an archive produced by Export. Entries
// outside the archived subtrees are rejected before anything is written.
func (s *BackupService) Import(ctx context.Context, archivePath string) (*BackupManifest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BackupService.Import")
	defer span.End()

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open archive: %v", ErrInvalidInput, err)
	}
	defer reader.Close()

	var manifest *BackupManifest
	for _, file := range reader.File {
		if file.Name == backupManifestName {
			manifest, err = readManifest(file)
			if err != nil {
				return nil, err
			}
			continue
		}
		if err := validBackupEntry(file.Name); err != nil {
			return nil, err
		}
	}
	if manifest == nil {
		return nil, fmt.Errorf("%w: archive has no manifest", ErrInvalidInput)
	}

	restored := 0
	for _, file := range reader.File {
		if file.Name == backupManifestName {
			continue
		}
		if err := s.restoreFile(file); err != nil {
			return nil, err
		}
		restored++
	}

	s.logger.InfoContext(ctx, "backup imported",
		"archive_id", manifest.ArchiveID, "files", restored)
	return manifest, nil
}

func (s *BackupService) addFile(writer *zip.Writer, name, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := writer.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}

func (s *BackupService) restoreFile(file *zip.File) error {
	target := filepath.Join(s.dataDir, filepath.FromSlash(file.Name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("restore %s: %w", file.Name, err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("restore %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("restore %s: %w", file.Name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("restore %s: %w", file.Name, err)
	}
	return nil
}

func readManifest(file *zip.File) (*BackupManifest, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open manifest: %v", ErrInvalidInput, err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest: %v", ErrInvalidInput, err)
	}
	var manifest BackupManifest
	if err := sonic.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("%w: decode manifest: %v", ErrInvalidInput, err)
	}
	return &manifest, nil
}

// validBackupEntry rejects traversal paths and entries outside the archived
// subtrees.
func validBackupEntry(name string) error {
	clean := filepath.ToSlash(filepath.Clean(name))
	if strings.HasPrefix(clean, "../") || filepath.IsAbs(name) {
		return fmt.Errorf("%w: unsafe archive entry %q", ErrInvalidInput, name)
	}
	for _, dir := range backupDirs {
		if strings.HasPrefix(clean, dir+"/") {
			return nil
		}
	}
	return fmt.Errorf("%w: unexpected archive entry %q", ErrInvalidInput, name)
}
