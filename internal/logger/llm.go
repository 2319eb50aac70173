package logger

import (
	"io"
	"log"
	"strings"
	"sync"
)

var (
	llmMu     sync.Mutex
	llmLog    *log.Logger
	llmEnable bool
)

// SetLLMWriter 指定 Agent 往返记录的落盘目标；nil 表示关闭。
func SetLLMWriter(w io.Writer) {
	llmMu.Lock()
	defer llmMu.Unlock()
	if w == nil {
		llmLog = nil
		return
	}
	llmLog = log.New(w, "", log.LstdFlags)
}

func EnableLLMDump(enabled bool) {
	llmMu.Lock()
	llmEnable = enabled
	llmMu.Unlock()
}

type llmSection struct {
	Title string
	Body  string
}

func logLLM(kind, provider string, sections []llmSection) {
	llmMu.Lock()
	logger := llmLog
	enabled := llmEnable
	llmMu.Unlock()
	if logger == nil || !enabled {
		return
	}
	var b strings.Builder
	b.WriteString("[LLM][")
	b.WriteString(kind)
	b.WriteString("]")
	if provider != "" {
		b.WriteString("[")
		b.WriteString(provider)
		b.WriteString("]")
	}
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("--- ")
		b.WriteString(sec.Title)
		b.WriteString(" ---\n")
		b.WriteString(sec.Body)
		if !strings.HasSuffix(sec.Body, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString("=====\n")
	logger.Print(b.String())
}

// LogLLMRequest 记录一次 Agent 调用的提示词。
func LogLLMRequest(provider, systemPrompt, userPrompt string) {
	logLLM("request", provider, []llmSection{
		{Title: "SYSTEM", Body: systemPrompt},
		{Title: "USER", Body: userPrompt},
	})
}

// LogLLMResponse 记录一次 Agent 调用的原始回复。
func LogLLMResponse(provider, raw string) {
	logLLM("response", provider, []llmSection{{Title: "RAW", Body: raw}})
}
