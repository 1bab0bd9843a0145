package tools

import (
	"context"
	"encoding/json"
	"errors"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"storyteller/internal/model"
	"storyteller/internal/service"
)

// StoryTool 将故事流水线包装为eino工具
type StoryTool struct {
	svc *service.StoryService
}

// StoryToolArgs 故事生成请求参数
type StoryToolArgs struct {
	Prompt         string `json:"prompt"`          // 故事提示
	Language       string `json:"language"`        // 目标语言显示名，可选
	AnimationStyle string `json:"animation_style"` // 动画风格名，可选
}

// NewStoryTool 创建故事生成工具实例
func NewStoryTool(svc *service.StoryService) *StoryTool {
	return &StoryTool{svc: svc}
}

// Info 获取故事生成工具信息
func (t *StoryTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	params := map[string]*schema.ParameterInfo{
		"prompt":          {Type: schema.String, Required: true, Desc: "故事提示"},
		"language":        {Type: schema.String, Required: false, Desc: "目标语言显示名，如 English (US)"},
		"animation_style": {Type: schema.String, Required: false, Desc: "动画风格名"},
	}
	return &schema.ToolInfo{
		Name:        "story_generate",
		Desc:        "根据提示生成五帧儿童插画故事，每帧附带一张插画",
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}, nil
}

// InvokableRun 执行故事生成任务
func (t *StoryTool) InvokableRun(ctx context.Context, argumentsInJSON string, opts ...einotool.Option) (string, error) {
	var args StoryToolArgs
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", err
	}
	if args.Prompt == "" {
		return "", errors.New("prompt required")
	}

	resp, err := t.svc.GenerateStory(ctx, model.StoryRequest{
		Prompt:         args.Prompt,
		Language:       args.Language,
		AnimationStyle: args.AnimationStyle,
	})
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// 确保StoryTool实现了einotool.InvokableTool接口
var _ einotool.InvokableTool = (*StoryTool)(nil)
