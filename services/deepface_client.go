package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultDetectorBackend = "opencv"

// DeepFaceClient calls a DeepFace-compatible REST service for emotion analysis.
type DeepFaceClient struct {
	Endpoint        string
	DetectorBackend string
	HTTPClient      *http.Client
}

func NewDeepFaceClient(endpoint, detectorBackend string, timeout time.Duration) *DeepFaceClient {
	if detectorBackend == "" {
		detectorBackend = defaultDetectorBackend
	}
	return &DeepFaceClient{
		Endpoint:        strings.TrimRight(endpoint, "/"),
		DetectorBackend: detectorBackend,
		HTTPClient:      &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Image            string   `json:"img_path"`
	Actions          []string `json:"actions"`
	EnforceDetection bool     `json:"enforce_detection"`
	DetectorBackend  string   `json:"detector_backend"`
}

type analyzeResponse struct {
	Results []struct {
		DominantEmotion string             `json:"dominant_emotion"`
		Emotion         map[string]float64 `json:"emotion"`
	} `json:"results"`
	Error string `json:"error"`
}

// DominantEmotion uploads img and returns the dominant emotion of the first
// detected face. Face detection is enforced.
func (c *DeepFaceClient) DominantEmotion(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	payload, err := json.Marshal(analyzeRequest{
		Image:            "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		Actions:          []string{"emotion"},
		EnforceDetection: true,
		DetectorBackend:  c.DetectorBackend,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result analyzeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("classifier error: status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || result.Error != "" {
		return "", fmt.Errorf("classifier error: status %d: %s", resp.StatusCode, result.Error)
	}
	if len(result.Results) == 0 || result.Results[0].DominantEmotion == "" {
		return "", fmt.Errorf("no face detected")
	}
	return result.Results[0].DominantEmotion, nil
}
