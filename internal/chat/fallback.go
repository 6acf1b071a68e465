package chat

// cannedResponses answer the most common beginner questions offline.
var cannedResponses = map[string]string{
	"what is a variable":   "A variable is a name bound to a value. In Python: `x = 5` makes x refer to 5. No type declaration needed.",
	"what is a function":   "A function is a named, reusable block of code. Define one with `def greet(name): return f\"Hello, {name}\"` and call it with greet(\"Ada\").",
	"what is a loop":       "A loop repeats code. `for item in items:` walks a sequence; `while condition:` repeats until the condition turns false.",
	"what is a list":       "A list is an ordered, mutable collection: `nums = [1, 2, 3]`. Index with nums[0], append with nums.append(4).",
	"what is a dictionary": "A dictionary maps keys to values: `ages = {\"ada\": 36}`. Look up with ages[\"ada\"], add with ages[\"alan\"] = 41.",
	"what is recursion":    "Recursion is a function calling itself on a smaller input. Always include a base case that stops the calls.",
	"how do i debug":       "Read the traceback bottom-up: the last line names the error, the lines above show where. print() and breakpoints narrow it down fast.",
}

const defaultFallback = "I can't reach the tutor model right now. Try rephrasing, or pick a topic from your dashboard and I'll have more context next time."

// fallbackMatchThreshold is the minimum normalized similarity for a canned
// answer to be considered a match.
const fallbackMatchThreshold = 0.6

// fallbackResponse picks the closest canned answer, if any is close enough.
func fallbackResponse(query string) string {
	best := defaultFallback
	bestScore := fallbackMatchThreshold
	for q, resp := range cannedResponses {
		if s := similarity(query, q); s >= bestScore {
			best = resp
			bestScore = s
		}
	}
	return best
}
