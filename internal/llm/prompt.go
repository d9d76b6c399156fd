package llm

import "strings"

// TableColumns is the column layout the interview prompt asks the model to answer with.
var TableColumns = []string{"类型", "问题或主题", "内容摘要", "原始话术", "覆盖情况", "补问建议"}

// BuildInterviewPrompt returns the structured-recording prompt comparing a
// transcript against its outline for the given interview goal.
func BuildInterviewPrompt(target, outline, transcript string) string {
	var sb strings.Builder
	sb.WriteString(`你是一个专业的访谈内容结构化记录专家，你的任务是帮助团队**完整还原受访者讲述的每个观点、完整案例与细节**，并将其与访谈大纲逐一比对、分类归档。

**一、大纲逐条比对**
- 请遍历以下访谈大纲中的每个问题，判断访谈中是否进行了回答。
- 若有回答，请完整提取对应内容，保留典型说法、关键数据、具体细节。
- 若无明确回答，请提出可直接用于补充访谈的具体补问建议。

**二、案例与线索抽取**
- 识别访谈中所有包含时间、人物、事件、结果的完整案例与经验分享。
- 提取其中的关键故事、成败经验、量化数据、可追问的线索。

**三、输出格式（Markdown表格）**
请生成如下格式的表格（不限于大纲问题）：

`)
	sb.WriteString("| " + strings.Join(TableColumns, " | ") + " |\n")
	sb.WriteString(strings.Repeat("|------", len(TableColumns)) + "|\n")
	sb.WriteString(`- 类型包含：大纲对应 / 案例补充 / 数据线索
- 覆盖情况请填写“是/否/部分覆盖”
- 内容摘要不少于50字，避免压缩过度
- 原始话术请节选受访者的原句
- 如有遗漏，请填写具体补问建议，问题精准可操作

---

【访谈目标】
`)
	sb.WriteString(strings.TrimSpace(target))
	sb.WriteString("\n\n【访谈大纲】\n")
	sb.WriteString(strings.TrimSpace(outline))
	sb.WriteString("\n\n【访谈原文】\n")
	sb.WriteString(strings.TrimSpace(transcript))
	sb.WriteString("\n")
	return sb.String()
}
