package gcp

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// VisionOCR detects text in images with the Cloud Vision API.
type VisionOCR struct {
	client *vision.ImageAnnotatorClient
}

func NewVisionOCR(ctx context.Context, credentialsJSON []byte) (*VisionOCR, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create Vision client: %w", err)
	}
	return &VisionOCR{client: client}, nil
}

// DetectText returns the full-text annotation of the image, or "" when the
// image contains no text.
func (v *VisionOCR) DetectText(ctx context.Context, image []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_TEXT_DETECTION}},
		}},
	}
	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision text detection failed: %w", err)
	}
	if len(resp.GetResponses()) == 0 {
		return "", nil
	}

	res := resp.GetResponses()[0]
	if res.GetError() != nil {
		return "", fmt.Errorf("vision text detection failed: %s", res.GetError().GetMessage())
	}
	annotations := res.GetTextAnnotations()
	if len(annotations) == 0 {
		return "", nil
	}
	return annotations[0].GetDescription(), nil
}

func (v *VisionOCR) Close() error {
	return v.client.Close()
}
