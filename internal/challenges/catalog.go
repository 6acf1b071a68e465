package challenges

import "encoding/json"

// builtinChallenges seeds an empty catalog.
var builtinChallenges = []Challenge{
	{
		Title:       "The Greeting Machine",
		Story:       "The village greeter has lost their voice. Teach the machine to greet visitors by name.",
		Description: "Write a function greet(name) that returns the string \"Hello, <name>!\".",
		Difficulty:  Easy,
		Category:    "Python Basics",
		InitialCode: "def greet(name):\n    # your code here\n    pass\n",
		Hints:       []string{"Use an f-string.", "Remember the exclamation mark."},
		TestCases:   json.RawMessage(`[{"input":["World"],"expected":"Hello, World!"},{"input":["Ada"],"expected":"Hello, Ada!"}]`),
		XPReward:    50,
		BadgeID:     "first_steps",
	},
	{
		Title:       "Sum of the Scrolls",
		Story:       "The librarian needs the total page count across a pile of scrolls.",
		Description: "Write a function total(pages) that returns the sum of a list of integers.",
		Difficulty:  Easy,
		Category:    "Python Basics",
		InitialCode: "def total(pages):\n    # your code here\n    pass\n",
		Hints:       []string{"A for loop works.", "So does the built-in sum()."},
		TestCases:   json.RawMessage(`[{"input":[[1,2,3]],"expected":6},{"input":[[]],"expected":0}]`),
		XPReward:    50,
	},
	{
		Title:       "The Palindrome Gate",
		Story:       "The gate only opens for words that read the same backwards.",
		Description: "Write a function is_palindrome(word) returning True when the word reads the same reversed, ignoring case.",
		Difficulty:  Medium,
		Category:    "Strings",
		InitialCode: "def is_palindrome(word):\n    # your code here\n    pass\n",
		Hints:       []string{"Lowercase the word first.", "Slicing with [::-1] reverses a string."},
		TestCases:   json.RawMessage(`[{"input":["Level"],"expected":true},{"input":["python"],"expected":false}]`),
		XPReward:    100,
		BadgeID:     "string_smith",
	},
	{
		Title:       "Counting Stars",
		Story:       "An astronomer tallies how often each star appears in the night log.",
		Description: "Write a function star_counts(names) that returns a dict mapping each name to how many times it appears.",
		Difficulty:  Medium,
		Category:    "Data Structures",
		InitialCode: "def star_counts(names):\n    # your code here\n    pass\n",
		Hints:       []string{"dict.get(name, 0) avoids a key check."},
		TestCases:   json.RawMessage(`[{"input":[["vega","sirius","vega"]],"expected":{"vega":2,"sirius":1}}]`),
		XPReward:    100,
	},
	{
		Title:       "Fibonacci Bridge",
		Story:       "Each plank of the bridge is as long as the previous two combined.",
		Description: "Write a function fib(n) returning the nth Fibonacci number, with fib(0)=0 and fib(1)=1.",
		Difficulty:  Hard,
		Category:    "Algorithms",
		InitialCode: "def fib(n):\n    # your code here\n    pass\n",
		Hints:       []string{"Iterate with two running values.", "Recursion without memoization is too slow for large n."},
		TestCases:   json.RawMessage(`[{"input":[0],"expected":0},{"input":[10],"expected":55}]`),
		XPReward:    200,
		BadgeID:     "algorithm_ace",
	},
	{
		Title:       "The Sorted Caravan",
		Story:       "Merchants must merge two sorted caravans into one ordered line.",
		Description: "Write a function merge(a, b) that merges two sorted lists into one sorted list without using sort().",
		Difficulty:  Hard,
		Category:    "Algorithms",
		InitialCode: "def merge(a, b):\n    # your code here\n    pass\n",
		Hints:       []string{"Walk both lists with two indices."},
		TestCases:   json.RawMessage(`[{"input":[[1,3],[2,4]],"expected":[1,2,3,4]}]`),
		XPReward:    200,
	},
}
