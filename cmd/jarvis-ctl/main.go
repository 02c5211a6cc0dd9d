package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"
	"github.com/tidwall/gjson"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"jarvis/internal/llm"
	"jarvis/internal/proxy"
	"jarvis/internal/state"
)

var cannedTests = []string{
	"spela upp", "pausa", "stoppa",
	"hoppa fram 30 sek", "hoppa tillbaka en halv minut",
	"till 1:23", "gå till slutet",
	"casta till tv",
}

func main() {
	agentURL := cli.StringP("agent", "a", "http://127.0.0.1:7071", "Agent base url")
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	proxyAddr := cli.StringP("proxy", "p", "", "Socks proxy for the LLM fallback")
	runTests := cli.BoolP("test", "t", false, "Route a canned utterance set")
	cli.Parse()

	godotenv.Load(*envFile)

	inputs := []string{strings.Join(cli.Args(), " ")}
	if *runTests {
		inputs = cannedTests
	} else if inputs[0] == "" {
		inputs = []string{"hoppa fram 30 sek"}
	}

	for _, text := range inputs {
		if err := routeOne(*agentURL, *proxyAddr, text); err != nil {
			fmt.Println("jarvis-agent unreachable:", err)
			os.Exit(1)
		}
	}
}

func routeOne(agentURL, proxyAddr, text string) error {
	body, _ := json.Marshal(map[string]string{"text": text})

	resp, err := http.Post(agentURL+"/agent/route", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post route: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read route response: %w", err)
	}

	res := gjson.ParseBytes(raw)
	if res.Get("fallback").String() == "llm" {
		interpretOne(proxyAddr, text)
		return nil
	}

	fmt.Printf("%s -> %s %s (confidence %.2f)\n",
		text,
		res.Get("plan.tool").String(),
		res.Get("plan.params").Raw,
		res.Get("confidence").Float(),
	)
	return nil
}

// interpretOne is the caller-side of the deferral contract: the agent said
// "llm", so we run the external interpreter ourselves.
func interpretOne(proxyAddr, text string) {
	plan, err := interpret(proxyAddr, text)
	if err != nil {
		fmt.Printf("%s -> no interpretation (%v)\n", text, err)
		return
	}
	if plan == nil {
		fmt.Printf("%s -> NONE\n", text)
		return
	}
	params, _ := json.Marshal(plan.Params)
	fmt.Printf("%s -> %s %s (llm)\n", text, plan.Tool, params)
}

func interpret(proxyAddr, text string) (*state.Plan, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if proxyAddr != "" {
		httpClient, err := proxy.NewSocksClient(proxyAddr, 120*time.Second)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	return llm.New(openai.NewClient(opts...)).Interpret(ctx, text)
}
