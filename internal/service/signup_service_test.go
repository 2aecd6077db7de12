package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fireclub-api/internal/logging"
	"fireclub-api/internal/models"
	"fireclub-api/internal/repository"
)

func newSignupService() (*SignupService, *repository.InMemorySignupRepository) {
	repo := repository.NewInMemorySignupRepository()
	return NewSignupService(repo, logging.NewLogger("info")), repo
}

func validRequest() *models.CreateSignupRequest {
	return &models.CreateSignupRequest{
		Nickname: "FireFan",
		Email:    "fan@example.com",
		State:    "Lagos",
	}
}

func TestCreateSignup(t *testing.T) {
	svc, _ := newSignupService()
	start := time.Now().UTC()

	signup, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, signup.ID)
	assert.Equal(t, "FireFan", signup.Nickname)
	assert.Equal(t, "fan@example.com", signup.Email)
	assert.Equal(t, "Lagos", signup.State)
	assert.False(t, signup.CreatedAt.Before(start))
}

func TestCreateSignupSanitizesNickname(t *testing.T) {
	svc, _ := newSignupService()

	req := validRequest()
	req.Nickname = `  <b>Fire"Fan'</b> & co  `

	signup, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	for _, c := range `<>"'&` {
		assert.NotContains(t, signup.Nickname, string(c))
	}
}

func TestCreateSignupRejectsShortSanitizedNickname(t *testing.T) {
	svc, repo := newSignupService()

	req := validRequest()
	req.Nickname = `<a>` // sanitizes down to one character

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	signups, err := repo.ListNewestFirst(context.Background(), repository.ListLimit)
	require.NoError(t, err)
	assert.Empty(t, signups)
}

func TestCreateSignupRejectsUnknownState(t *testing.T) {
	svc, _ := newSignupService()

	req := validRequest()
	req.State = "Atlantis"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateSignupRejectsDuplicateEmail(t *testing.T) {
	svc, repo := newSignupService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Nickname = "SomeoneElse"
	req.State = "Kano"

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	signups, err := repo.ListNewestFirst(ctx, repository.ListLimit)
	require.NoError(t, err)
	assert.Len(t, signups, 1, "duplicate must not insert a second record")
}

func TestCreateSignupKeepsUTMFields(t *testing.T) {
	svc, _ := newSignupService()

	source := "instagram"
	campaign := "launch-week"
	req := validRequest()
	req.UTMSource = &source
	req.UTMCampaign = &campaign

	signup, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, signup.UTMSource)
	require.NotNil(t, signup.UTMCampaign)
	assert.Equal(t, "instagram", *signup.UTMSource)
	assert.Equal(t, "launch-week", *signup.UTMCampaign)
}

func TestListSignupsNewestFirst(t *testing.T) {
	svc, repo := newSignupService()
	ctx := context.Background()

	// Insert directly so createdAt values are distinct and controlled.
	base := time.Now().UTC()
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		signup := models.NewEmailSignup("Nick", email, "Lagos", nil, nil)
		signup.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(ctx, signup))
	}

	signups, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, signups, 3)

	assert.Equal(t, "c@example.com", signups[0].Email)
	for i := 1; i < len(signups); i++ {
		assert.False(t, signups[i-1].CreatedAt.Before(signups[i].CreatedAt))
	}
}
