package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService hosts menu images remotely when credentials are
// configured. Without it, uploads are embedded as data URIs instead.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService() (*CloudinaryService, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, errors.New("cloudinary credentials not configured")
		}
		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
		}
		return &CloudinaryService{cld: cld}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

func (s *CloudinaryService) UploadMenuImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	publicID := fmt.Sprintf("menu/%d_%s", time.Now().Unix(), strings.ReplaceAll(filename, " ", "_"))
	publicID = strings.TrimSuffix(publicID, filepath.Ext(publicID))

	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         "menu",
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", errors.New("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}
