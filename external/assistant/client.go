package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

const (
	assistantLogPrefix = "assistant"
	statusOK           = "ok"

	toneNeutral = "Neutral"
)

var validate = validator.New()

// personas keyed by the classified tone of the latest user message
var personas = map[string]string{
	"Friendly":    "You are a warm and friendly assistant named Kai. Be encouraging and personable.",
	"Formal":      "You are a professional and precise assistant. Keep responses formal, structured and informative.",
	"Frustrated":  "You are an empathetic and patient assistant named Alex. Acknowledge frustration and offer calm, step-by-step help.",
	"Inquisitive": "You are an enthusiastic and curious assistant named Charlie. Encourage exploration and ask clarifying questions.",
	toneNeutral:   "You are a helpful and direct assistant. Get straight to the point.",
}

type part struct {
	Text  string `json:"text,omitempty"`
	Media string `json:"media,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content []part `json:"content"`
}

type generateRequest struct {
	Model      string    `json:"model"`
	System     string    `json:"system,omitempty"`
	Messages   []message `json:"messages,omitempty"`
	Prompt     []part    `json:"prompt"`
	JSONOutput bool      `json:"json_output,omitempty"`
}

type generateResponse struct {
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	model      string
}

// New returns an assistant backed by a hosted model gateway
func New(httpClient *http.Client, endpoint, token, model string) Assistant {
	return &client{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
		model:      model,
	}
}

func (c *client) generate(ctx context.Context, greq *generateRequest) (json.RawMessage, error) {
	body, err := json.Marshal(greq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.endpoint+"/v1/generate", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix": assistantLogPrefix,
			"status": resp.StatusCode,
			"body":   string(d),
		}).Error("assistant gateway request failed")
		return nil, fmt.Errorf("assistant gateway responds with status %d", resp.StatusCode)
	}

	var gresp generateResponse
	if err := json.Unmarshal(d, &gresp); err != nil {
		return nil, ErrInvalidResponse
	}
	if gresp.Status != statusOK {
		return nil, ErrResponseStatus
	}

	return gresp.Output, nil
}

// generateInto runs a generation and decodes the structured output into
// out, validating it against its schema. Any shape mismatch is reported as
// ErrInvalidResponse; the raw output is never trusted implicitly.
func (c *client) generateInto(ctx context.Context, greq *generateRequest, out interface{}) error {
	greq.JSONOutput = true

	output, err := c.generate(ctx, greq)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(output, out); err != nil {
		log.WithField("prefix", assistantLogPrefix).WithError(err).Error("undecodable assistant output")
		return ErrInvalidResponse
	}
	if err := validate.Struct(out); err != nil {
		log.WithField("prefix", assistantLogPrefix).WithError(err).Error("assistant output failed schema validation")
		return ErrInvalidResponse
	}

	return nil
}

type toneAnalysis struct {
	Tone string `json:"tone" validate:"required,oneof=Friendly Formal Frustrated Inquisitive Neutral"`
}

func (c *client) classifyTone(ctx context.Context, text string) string {
	var result toneAnalysis
	err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "You are a tone analysis expert. Classify the primary tone of the user message as one of: Friendly, Formal, Frustrated, Inquisitive, Neutral.",
		Prompt: []part{{Text: text}},
	}, &result)
	if err != nil {
		// tone is a best-effort hint, fall back to the neutral persona
		log.WithField("prefix", assistantLogPrefix).WithError(err).Warn("tone classification failed")
		return toneNeutral
	}
	return result.Tone
}

func (c *client) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	tone := toneNeutral
	if input.Message != "" {
		tone = c.classifyTone(ctx, input.Message)
	}

	messages := make([]message, 0, len(input.History))
	for _, h := range input.History {
		parts := []part{}
		if h.Content != "" {
			parts = append(parts, part{Text: h.Content})
		}
		if h.ImageURL != "" {
			parts = append(parts, part{Media: h.ImageURL})
		}
		if len(parts) == 0 {
			continue
		}
		messages = append(messages, message{Role: h.Role, Content: parts})
	}

	prompt := []part{}
	if input.Message != "" {
		prompt = append(prompt, part{Text: input.Message})
	}
	if input.ImageURL != "" {
		prompt = append(prompt, part{Media: input.ImageURL})
	}

	var result ChatOutput
	if err := c.generateInto(ctx, &generateRequest{
		Model:    c.model,
		System:   personas[tone],
		Messages: messages,
		Prompt:   prompt,
	}, &result); err != nil {
		return nil, err
	}
	result.Tone = tone

	return &result, nil
}

func (c *client) ReadTextFromImage(ctx context.Context, imageURL string) (*ReadTextResult, error) {
	var result ReadTextResult
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Extract all readable text from the image and produce a spoken audio version of it.",
		Prompt: []part{{Media: imageURL}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) InterpretSignLanguage(ctx context.Context, videoURL string) (*SignInterpretation, error) {
	var result SignInterpretation
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Interpret the sign language in the video and transcribe it as plain text.",
		Prompt: []part{{Media: videoURL}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) GenerateSignCards(ctx context.Context, text string) (*SignCards, error) {
	var result SignCards
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Extract the key concepts of the text as a list of sign cards.",
		Prompt: []part{{Text: text}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) EasyRead(ctx context.Context, text string) (*EasyReadVersion, error) {
	var result EasyReadVersion
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Rewrite the text as an easy-to-read version using short sentences and simple words.",
		Prompt: []part{{Text: text}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) DescribeSurroundings(ctx context.Context, imageURL string) (*SceneDescription, error) {
	var result SceneDescription
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Describe the scene in the image for a person who cannot see it, and produce a spoken audio version.",
		Prompt: []part{{Media: imageURL}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) DailyReflection(ctx context.Context, mood, note string) (*Reflection, error) {
	var result Reflection
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Offer a tentative, validating and non-judgmental reflection on the journal entry.",
		Prompt: []part{{Text: fmt.Sprintf("Mood: %s\n\n%s", mood, note)}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) SummarizeArticle(ctx context.Context, articleText string) (*ArticleSummary, error) {
	var result ArticleSummary
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Summarize the news article: a text summary suitable for text-to-speech, easy-to-read bullet points, key facts and sign cards.",
		Prompt: []part{{Text: articleText}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *client) GenerateLessonQuiz(ctx context.Context, lessonText string) (*LessonQuiz, error) {
	var result LessonQuiz
	if err := c.generateInto(ctx, &generateRequest{
		Model:  c.model,
		System: "Write 3 to 5 multiple choice quiz questions about the lesson, each with 4 options and the index of the correct answer.",
		Prompt: []part{{Text: lessonText}},
	}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
