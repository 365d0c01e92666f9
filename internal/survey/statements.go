package survey

// Statement is one item of the self-assessment. Ordinal is 1-based and
// matches the numbering embedded in Text.
type Statement struct {
	Ordinal int
	Text    string
}

// StatementCount is the number of statements in the instrument.
const StatementCount = 25

var statementTexts = [StatementCount]string{
	"1. If the other party’s position seems very important to him or her, I may sacrifice my own position.",
	"2. I address problems and concerns directly without blame or judgment.",
	"3. I try to win by convincing the other party of the logic and benefits of my position.",
	"4. I tell the other person my ideas for and ask for his or hers in return.",
	"5. I try to find a compromise solution.",
	"6. I try to postpone discussions until I have had some time to think.",
	"7. I see achievement as more important than relational issues.",
	"8. I use body language that might be perceived as condescending or arrogant.",
	"9. Confronting someone about a problem is very uncomfortable for me.",
	"10. I give up some points in exchange for others.",
	"11. I propose a middle ground.",
	"12. I am likely to take a comment back or try to soften it if I realize that it hurt someone’s feelings.",
	"13. I think it is all right to ask for what I want or to explain how I feel.",
	"14. I find conflict stressful and will avoid it any way I can.",
	"15. I have been described as impatient, controlling, insensitive or emotionally detached.",
	"16. If asked to do something I don’t agree with or don’t want to do, I’ll do it but deliberately won’t do it as well as I could have.",
	"17. I let my body language communicate my feelings rather than telling people directly how I feel.",
	"18. I remain calm and confident when faced with aggression or criticism.",
	"19. I may overextend myself trying to meet everyone’s needs.",
	"20. I try to find fair combination of gains and losses for both of us.",
	"21. I look for and acknowledge common ground.",
	"22. I have a hard time being clear about what I want and need for fear of appearing demanding or selfish.",
	"23. I can overlook valuable ideas in favor of action.",
	"24. I may not be open to hear other points of view.",
	"25. I avoid taking positions that would create controversy.",
}

// Statements returns the instrument in ascending ordinal order.
// The returned slice is a fresh copy on every call.
func Statements() []Statement {
	out := make([]Statement, StatementCount)
	for i, text := range statementTexts {
		out[i] = Statement{Ordinal: i + 1, Text: text}
	}
	return out
}

// StatementByOrdinal looks up a single statement.
func StatementByOrdinal(ordinal int) (Statement, bool) {
	if ordinal < 1 || ordinal > StatementCount {
		return Statement{}, false
	}
	return Statement{Ordinal: ordinal, Text: statementTexts[ordinal-1]}, true
}
