package llm

import (
	"context"
	"encoding/json"
	"fmt"

	log "log/slog"

	openai "github.com/openai/openai-go/v3"

	"jarvis/internal/router"
	"jarvis/internal/state"
)

const systemPrompt = `
You are the command interpreter for a Swedish voice assistant.
Your ONLY job is to convert the user's utterance into a minimal structured JSON plan.

GENERAL RULES:
1. Do NOT converse.
2. Do NOT answer the question.
3. Do NOT add explanations.
4. Output ONLY JSON. No markdown.
5. Never hallucinate devices, rooms or parameters.

OUTPUT FORMAT:
{
  "tool": "<string>",
  "params": { ... },
  "intent": "<string>",
  "confidence": <0.0-1.0>
}

TOOLS (canonical):
- "PLAY", "PAUSE", "STOP", "NEXT", "PREV"            params: {}
- "SEEK"       params: {"direction":"FWD"|"BACK","seconds":<int>} or {"position":0|1} or {"to":"M:SS"} or {"endpoint":"INTRO"|"RECAP"|"ADS"}
- "SET_VOLUME" params: {"level":<0-100>} or {"delta":<int>}
- "MUTE", "UNMUTE"                                   params: {}
- "TRANSFER"   params: {"device":"<name>"} or {"room":"<name>"}
- "NONE"       when the utterance is not a media command

PARAMS NORMALIZATION:
- seconds and level must be integers.
- level must be within 0-100.
- device and room names stay lowercase Swedish as spoken.
- Never invent missing values.

If the meaning is unclear, tool = "NONE" with confidence 0.

Be strict and minimal. Do not generate text other than the JSON.
`

// Interpreter is the external interpreter callers consult when the rule
// chain defers. It also satisfies the classifier capability, so it can be
// A/B-compared against the lexicon on the same utterances.
type Interpreter struct {
	client openai.Client
	model  openai.ChatModel
}

func New(client openai.Client) *Interpreter {
	return &Interpreter{
		client: client,
		model:  openai.ChatModelGPT5Nano,
	}
}

type reply struct {
	Tool       string         `json:"tool"`
	Params     map[string]any `json:"params"`
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
}

// Interpret asks the model for a plan. A nil plan with nil error means the
// model declined to treat the utterance as a command.
func (i *Interpreter) Interpret(ctx context.Context, text string) (*state.Plan, error) {
	out, err := i.ask(ctx, text)
	if err != nil {
		return nil, err
	}
	if out.Tool == "" || out.Tool == "NONE" {
		return nil, nil
	}
	if out.Params == nil {
		out.Params = map[string]any{}
	}
	return &state.Plan{Tool: out.Tool, Params: out.Params}, nil
}

// Classify adapts the interpreter to the classifier capability. Errors are
// reported as "no match", the caller cannot do anything better with them.
func (i *Interpreter) Classify(text string) (router.Match, bool) {
	out, err := i.ask(context.Background(), text)
	if err != nil || out.Intent == "" {
		return router.Match{}, false
	}
	return router.Match{Intent: out.Intent, Score: out.Confidence}, true
}

var _ router.Classifier = (*Interpreter)(nil)

func (i *Interpreter) ask(ctx context.Context, text string) (reply, error) {
	resp, err := i.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Model: i.model,
	})
	if err != nil {
		return reply{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return reply{}, fmt.Errorf("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return reply{}, fmt.Errorf("empty message content")
	}

	log.Debug("Interpreted", "data", content)

	var out reply
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return reply{}, fmt.Errorf("unmarshal interpreter result: %w (raw: %s)", err, content)
	}
	return out, nil
}
