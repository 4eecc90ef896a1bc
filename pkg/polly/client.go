package polly

import (
	"rag-mecanico/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awspolly "github.com/aws/aws-sdk-go-v2/service/polly"
)

// NewClient builds a Polly client from static credentials. SDK retries are
// disabled: the speech service falls back to a cheaper engine instead.
func NewClient(cfg *config.SpeechConfig) *awspolly.Client {
	return awspolly.New(awspolly.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		RetryMaxAttempts: 1,
	})
}
