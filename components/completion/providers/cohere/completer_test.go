package cohere

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"

	"github.com/bububa/react-agents/components/completion"
)

func TestComplete(t *testing.T) {
	var body struct {
		Message       string   `json:"message"`
		Model         string   `json:"model"`
		Temperature   float64  `json:"temperature"`
		P             float64  `json:"p"`
		MaxTokens     int      `json:"max_tokens"`
		StopSequences []string `json:"stop_sequences"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		bs, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(bs, &body); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"text":"Final Answer: 4","generation_id":"g1","meta":{"tokens":{"input_tokens":12,"output_tokens":4}}}`)
	}))
	defer srv.Close()

	clt := cohereClient.NewClient(cohereOption.WithToken("test-key"), cohereOption.WithBaseURL(srv.URL))
	c := New(clt, completion.WithModel("command-r"))
	ret, err := c.Complete(context.Background(), "Question: 2+2?\nThought:", completion.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if ret.Text != "Final Answer: 4" {
		t.Errorf("unexpected text %q", ret.Text)
	}
	if ret.Usage == nil || ret.Usage.InputTokens != 12 || ret.Usage.OutputTokens != 4 {
		t.Errorf("unexpected usage %+v", ret.Usage)
	}
	if body.Model != "command-r" || body.P != 0.5 || body.MaxTokens != 2000 {
		t.Errorf("unexpected request %+v", body)
	}
	if c.Provider() != completion.ProviderCohere {
		t.Errorf("unexpected provider %s", c.Provider())
	}
}
