package identity

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
)

// Session is the already-resolved identity of the current caller.
// This core never authenticates anyone; it only consumes what the
// provider hands back for a valid access token.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type Provider interface {
	ResolveSession(ctx context.Context, accessToken string) (*Session, error)
}

type cognitoProvider struct {
	client *cognito.Client
}

func NewCognitoProvider() (Provider, error) {
	region := os.Getenv("AWS_COGNITO_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &cognitoProvider{client: cognito.NewFromConfig(cfg)}, nil
}

// ResolveSession exchanges the caller's access token for their profile
// attributes. The "sub" attribute is the stable id reused as our
// persistence key.
func (c *cognitoProvider) ResolveSession(ctx context.Context, accessToken string) (*Session, error) {
	out, err := c.client.GetUser(ctx, &cognito.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return nil, err
	}

	sess := &Session{ID: aws.ToString(out.Username)}
	for _, attr := range out.UserAttributes {
		switch aws.ToString(attr.Name) {
		case "sub":
			sess.ID = aws.ToString(attr.Value)
		case "name":
			sess.Name = aws.ToString(attr.Value)
		case "email":
			sess.Email = aws.ToString(attr.Value)
		case "picture":
			sess.Image = aws.ToString(attr.Value)
		}
	}
	return sess, nil
}
