package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"

	storage_go "github.com/supabase-community/storage-go"
)

// PhotoStorage envia fotos de coletas para um bucket do Supabase Storage e
// deriva as URLs públicas usadas nas notas do relatório
type PhotoStorage struct {
	client *storage_go.Client
	bucket string
}

// Setup cria o cliente de storage a partir das variáveis de ambiente
// STORAGE_URL, STORAGE_KEY e STORAGE_BUCKET
func Setup() (*PhotoStorage, error) {
	url := os.Getenv("STORAGE_URL")
	if url == "" {
		return nil, fmt.Errorf("STORAGE_URL is not defined in the environment")
	}

	key := os.Getenv("STORAGE_KEY")
	if key == "" {
		return nil, fmt.Errorf("STORAGE_KEY is not defined in the environment")
	}

	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "checklist-photos"
	}

	return &PhotoStorage{
		client: storage_go.NewClient(url, key, nil),
		bucket: bucket,
	}, nil
}

// Upload envia o conteúdo da foto para o bucket
func (s *PhotoStorage) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("erro ao enviar arquivo para o bucket: %w", err)
	}
	return nil
}

// PublicURL deriva a URL pública de um objeto do bucket
func (s *PhotoStorage) PublicURL(path string) string {
	return s.client.GetPublicUrl(s.bucket, path).SignedURL
}
