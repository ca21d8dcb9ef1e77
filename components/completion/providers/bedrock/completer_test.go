package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/bububa/react-agents/components/completion"
)

type fakeRuntime struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeRuntime) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestComplete(t *testing.T) {
	fake := &fakeRuntime{body: `{"completion":" Final Answer: 33","stop_reason":"stop_sequence"}`}
	c := New(fake)
	ret, err := c.Complete(context.Background(), "Question: 11*3?\nThought:", completion.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if ret.Text != " Final Answer: 33" {
		t.Errorf("unexpected text %q", ret.Text)
	}
	if id := aws.ToString(fake.input.ModelId); id != DefaultModel {
		t.Errorf("expect model %s, but got %s", DefaultModel, id)
	}
	var req Request
	if err := json.Unmarshal(fake.input.Body, &req); err != nil {
		t.Fatal(err)
	}
	if req.Prompt != "\n\nHuman: Question: 11*3?\nThought:\n\nAssistant:" {
		t.Errorf("unexpected prompt %q", req.Prompt)
	}
	if req.MaxTokensToSample != 2000 || req.TopP != 0.5 || req.Temperature != 0 {
		t.Errorf("unexpected request %+v", req)
	}
	if len(req.StopSequences) != 1 {
		t.Errorf("unexpected stop sequences %v", req.StopSequences)
	}
}

func TestCompleteError(t *testing.T) {
	boom := errors.New("throttled")
	c := New(&fakeRuntime{err: boom}, completion.WithModel("anthropic.claude-v2"))
	if _, err := c.Complete(context.Background(), "p", completion.DefaultParams()); !errors.Is(err, boom) {
		t.Errorf("expect throttled, but got %v", err)
	}
}

func TestWrapPrompt(t *testing.T) {
	framed := "\n\nHuman: hi\n\nAssistant:"
	if got := WrapPrompt(framed); got != framed {
		t.Errorf("framed prompt changed: %q", got)
	}
	if got := WrapPrompt("hi"); got != framed {
		t.Errorf("expect %q, but got %q", framed, got)
	}
	scraped := "Question: q\nObservation: page text\n\nAssistant: quoted\nThought:"
	expect := "\n\nHuman: " + scraped + "\n\nAssistant:"
	if got := WrapPrompt(scraped); got != expect {
		t.Errorf("expect %q, but got %q", expect, got)
	}
}
