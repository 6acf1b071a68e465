package quiz

import (
	"fmt"
	"strings"
)

// Feedback renders the post-assessment summary text: strengths,
// improvement areas, and suggested resources keyed off the weak
// categories. Pure presentation; nothing here affects scoring.
func Feedback(strengths, weaknesses []string, topic string) string {
	var b strings.Builder

	if len(strengths) > 0 {
		b.WriteString("### Your Strengths\n")
		fmt.Fprintf(&b, "You demonstrated strong understanding in: %s.\n\n", strings.Join(strengths, ", "))
	}
	if len(weaknesses) > 0 {
		b.WriteString("### Areas for Improvement\n")
		fmt.Fprintf(&b, "Consider focusing more on: %s.\n\n", strings.Join(weaknesses, ", "))
	}

	b.WriteString("### Suggested Learning Resources\n")
	if len(weaknesses) == 0 {
		fmt.Fprintf(&b, "You're doing great! To continue advancing your knowledge of %s, consider:\n\n", topic)
		fmt.Fprintf(&b, "- Exploring more advanced topics related to %s\n", topic)
		b.WriteString("- Teaching others to solidify your understanding\n")
		fmt.Fprintf(&b, "- Working on projects that combine %s with other technologies\n", topic)
		return b.String()
	}

	b.WriteString("Based on your performance, here are some resources to help you improve:\n\n")
	for _, area := range weaknesses {
		fmt.Fprintf(&b, "*For %s:*\n", area)
		switch {
		case strings.Contains(area, "Basic"):
			fmt.Fprintf(&b, "- Review foundational concepts in %s tutorials\n", topic)
			b.WriteString("- Practice with beginner-level exercises\n")
		case strings.Contains(area, "Advanced"):
			fmt.Fprintf(&b, "- Explore advanced documentation on %s\n", topic)
			fmt.Fprintf(&b, "- Try building complex projects that use %s\n", topic)
		case strings.Contains(area, "Problem Solving"):
			fmt.Fprintf(&b, "- Work through coding challenges focused on %s\n", topic)
			b.WriteString("- Join study groups or forums to discuss problem-solving approaches\n")
		case strings.Contains(area, "Application"):
			fmt.Fprintf(&b, "- Build small projects applying %s concepts\n", topic)
			b.WriteString("- Follow tutorials that show practical applications\n")
		default:
			fmt.Fprintf(&b, "- Revisit the %s material for this area and retake the assessment\n", topic)
		}
		b.WriteString("\n")
	}
	return b.String()
}
