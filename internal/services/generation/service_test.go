package generation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/content-toolbox/internal/clients/stability"
	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	toolerr "github.com/KirkDiggler/content-toolbox/internal/errors"
	"github.com/KirkDiggler/content-toolbox/internal/services/generation"
	mockgeneration "github.com/KirkDiggler/content-toolbox/internal/services/generation/mock"
)

type GenerationServiceTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	picker *mockgeneration.MockPicker
	images *mockgeneration.MockImageGenerator
	svc    generation.Service
	ctx    context.Context
}

func (s *GenerationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.picker = mockgeneration.NewMockPicker(s.ctrl)
	s.images = mockgeneration.NewMockImageGenerator(s.ctrl)
	s.svc = generation.NewService(&generation.ServiceConfig{
		Picker:         s.picker,
		ImageGenerator: s.images,
		Now:            func() time.Time { return time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC) },
	})
	s.ctx = context.Background()
}

func (s *GenerationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// pickTemplate makes the picker choose template idx and return offset for
// any numeric range
func (s *GenerationServiceTestSuite) pickTemplate(idx, offset int) {
	s.picker.EXPECT().Intn(gomock.Any()).DoAndReturn(func(n int) int {
		if n == 5 {
			return idx
		}
		return offset
	}).AnyTimes()
}

func (s *GenerationServiceTestSuite) params(platform content.Platform, tone content.Tone) *content.GenerationParams {
	return &content.GenerationParams{
		Platform: platform,
		Topic:    "cold brew",
		Tone:     tone,
		Length:   content.LengthMedium,
	}
}

func (s *GenerationServiceTestSuite) TestTitle_Templates() {
	testCases := []struct {
		name     string
		platform content.Platform
		tone     content.Tone
		length   content.Length
		idx      int
		expected string
	}{
		{"instagram humorous", content.PlatformInstagram, content.ToneHumorous, content.LengthMedium, 1, "The Funniest cold brew Guide for the 'Gram"},
		{"instagram casual", content.PlatformInstagram, content.ToneCasual, content.LengthMedium, 4, "Hey Followers! Let's Talk About cold brew 🔥"},
		{"youtube long", content.PlatformYouTube, content.ToneProfessional, content.LengthLong, 4, "cold brew Explained in 15 Minutes"},
		{"youtube short", content.PlatformYouTube, content.ToneProfessional, content.LengthShort, 4, "cold brew Explained in 5 Minutes"},
		{"tiktok day", content.PlatformTikTok, content.ToneCasual, content.LengthMedium, 3, "Day 3 of cold brew #trendalert"},
		{"blog year", content.PlatformBlog, content.ToneProfessional, content.LengthMedium, 0, "cold brew: A Comprehensive Guide for 2024"},
		{"twitter hot take", content.PlatformTwitter, content.ToneHumorous, content.LengthMedium, 1, "Hot take: cold brew is overrated. Here's why..."},
		{"linkedin revenue", content.PlatformLinkedIn, content.ToneProfessional, content.LengthMedium, 0, "How I Leveraged cold brew to Increase Company Revenue by 22%"},
		{"facebook list", content.PlatformFacebook, content.ToneCasual, content.LengthMedium, 2, "5 things I wish I knew about cold brew sooner"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.pickTemplate(tc.idx, 2)

			p := s.params(tc.platform, tc.tone)
			p.Length = tc.length
			result, err := s.svc.Generate(s.ctx, generation.KindTitle, p)
			s.Require().NoError(err)
			s.Equal(tc.expected, result.Title)
			s.Empty(result.Description)
			s.Nil(result.Hashtags)
			s.Nil(result.Image)
		})
	}
}

func (s *GenerationServiceTestSuite) TestDescription_TikTokIsShortForm() {
	p := s.params(content.PlatformTikTok, content.ToneCasual)
	p.AdditionalInfo = "summer drinks"
	p.Length = content.LengthLong

	result, err := s.svc.Generate(s.ctx, generation.KindDescription, p)
	s.Require().NoError(err)
	s.Equal("cold brew ✨ #fyp #foryoupage #summerdrinks #coldbrew #viral #trending", result.Description)
}

func (s *GenerationServiceTestSuite) TestDescription_TwitterFitsInOneTweet() {
	p := s.params(content.PlatformTwitter, content.ToneHumorous)
	p.AdditionalInfo = strings.Repeat("very long context ", 40)

	result, err := s.svc.Generate(s.ctx, generation.KindDescription, p)
	s.Require().NoError(err)
	s.LessOrEqual(utf8.RuneCountInString(result.Description), 280)
	s.True(strings.HasPrefix(result.Description, "cold brew is hilariously important"))
}

func (s *GenerationServiceTestSuite) TestDescription_ToneSections() {
	result, err := s.svc.Generate(s.ctx, generation.KindDescription, s.params(content.PlatformYouTube, content.ToneEducational))
	s.Require().NoError(err)
	s.Contains(result.Description, "📺 Learn all about cold brew in this medium video!")
	s.Contains(result.Description, "CHAPTERS:")
	s.Contains(result.Description, "#coldbrew #YouTube #Content")

	result, err = s.svc.Generate(s.ctx, generation.KindDescription, s.params(content.PlatformLinkedIn, content.ToneProfessional))
	s.Require().NoError(err)
	s.Contains(result.Description, "Key takeaways:")
	s.Contains(result.Description, "up to 30%")
}

func (s *GenerationServiceTestSuite) TestHashtags() {
	p := s.params(content.PlatformInstagram, content.ToneHumorous)
	p.Topic = "cold brew!"

	result, err := s.svc.Generate(s.ctx, generation.KindHashtags, p)
	s.Require().NoError(err)
	s.Equal([]string{
		"#Instagram", "#IGDaily", "#InstaPost",
		"#cold", "#brew",
		"#Funny", "#LOL", "#Humor",
		"#InstaLife", "#IGers", "#InstaDaily",
	}, result.Hashtags)

	p = s.params(content.PlatformTwitter, content.ToneCasual)
	p.Topic = "iced  cold brew coffee"
	result, err = s.svc.Generate(s.ctx, generation.KindHashtags, p)
	s.Require().NoError(err)
	s.Equal([]string{"#Twitter", "#TweetTips", "#iced", "#cold"}, result.Hashtags)
}

func (s *GenerationServiceTestSuite) TestGenerate_Validation() {
	_, err := s.svc.Generate(s.ctx, generation.KindAll, &content.GenerationParams{Platform: content.PlatformBlog, Topic: "  "})
	s.True(toolerr.IsValidation(err))

	_, err = s.svc.Generate(s.ctx, "poem", s.params(content.PlatformBlog, content.ToneCasual))
	s.True(toolerr.IsInvalidArgument(err))

	_, err = s.svc.Generate(s.ctx, generation.KindTitle, &content.GenerationParams{Platform: "orkut", Topic: "x"})
	s.True(toolerr.IsInvalidArgument(err))

	_, err = s.svc.Generate(s.ctx, generation.KindTitle, nil)
	s.True(toolerr.IsInvalidArgument(err))
}

func (s *GenerationServiceTestSuite) TestGenerateAll_WithImage() {
	s.pickTemplate(0, 0)
	s.images.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *stability.TextToImageRequest) (string, error) {
			s.Equal(generation.ImageSize, req.Width)
			s.Equal(generation.ImageSize, req.Height)
			s.True(strings.HasPrefix(req.Prompt, "blog post about cold brew"))
			return "data:image/png;base64,eA==", nil
		})

	result, err := s.svc.Generate(s.ctx, generation.KindAll, s.params(content.PlatformBlog, content.ToneProfessional))
	s.Require().NoError(err)
	s.NotEmpty(result.Title)
	s.NotEmpty(result.Description)
	s.NotEmpty(result.Hashtags)
	s.Require().NotNil(result.Image)
	s.Equal("data:image/png;base64,eA==", *result.Image)
}

func (s *GenerationServiceTestSuite) TestGenerateAll_ImageFailureKeepsText() {
	s.pickTemplate(0, 0)
	s.images.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).Return("", errors.New("quota exhausted"))

	result, err := s.svc.Generate(s.ctx, generation.KindAll, s.params(content.PlatformFacebook, content.ToneCasual))
	s.Require().NoError(err)
	s.NotEmpty(result.Title)
	s.Nil(result.Image)
}

func (s *GenerationServiceTestSuite) TestGenerateImage_RequiresTopic() {
	_, err := s.svc.GenerateImage(s.ctx, &generation.ImageInput{Platform: content.PlatformBlog})
	s.True(toolerr.IsValidation(err))
}

func TestGenerationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GenerationServiceTestSuite))
}

func TestGenerateImage_NoGenerator(t *testing.T) {
	svc := generation.NewService(nil)
	img, err := svc.GenerateImage(context.Background(), &generation.ImageInput{
		Platform: content.PlatformBlog,
		Topic:    "tea",
	})
	require.NoError(t, err)
	assert.Nil(t, img)
}

func TestBuildImagePrompt(t *testing.T) {
	prompt := generation.BuildImagePrompt(&generation.ImageInput{
		Platform:       content.PlatformInstagram,
		Topic:          "tea",
		Title:          "Morning Rituals",
		AdditionalInfo: "green tea",
	})
	assert.Equal(t, "instagram post about tea, Morning Rituals, green tea, vibrant colors, lifestyle photography, square format, high quality, trending on Instagram", prompt)

	prompt = generation.BuildImagePrompt(&generation.ImageInput{Platform: content.PlatformTwitter, Topic: "tea"})
	assert.Equal(t, "twitter post about tea, concise, impactful, twitter banner style, clean design", prompt)
}

func TestResult_Apply(t *testing.T) {
	draft := content.DraftContent{Platform: content.PlatformBlog, Title: "keep me", Description: "old"}
	img := "data:image/png;base64,eA=="
	r := &generation.Result{Description: "new", Hashtags: []string{"#a"}, Image: &img}

	r.Apply(&draft)
	assert.Equal(t, "keep me", draft.Title)
	assert.Equal(t, "new", draft.Description)
	assert.Equal(t, []string{"#a"}, draft.Hashtags)
	require.NotNil(t, draft.Image)
	assert.Equal(t, img, *draft.Image)

	r.Hashtags[0] = "#changed"
	assert.Equal(t, "#a", draft.Hashtags[0])
}

func TestParseKind(t *testing.T) {
	k, err := generation.ParseKind(" ALL ")
	require.NoError(t, err)
	assert.Equal(t, generation.KindAll, k)

	_, err = generation.ParseKind("limerick")
	assert.Error(t, err)
}

func TestRandomPicker(t *testing.T) {
	p := generation.NewRandomPicker(7)
	for i := 0; i < 100; i++ {
		v := p.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Zero(t, p.Intn(0))
}
