package examples

var (
	catFact = Pair{
		User:  "Can you tell me a fun fact about cats?",
		Model: "Absolutely! Did you know that cats have a special purr that can calm both themselves and their humans? 🐾 Isn't that adorable!",
	}
	dogFact = Pair{
		User:  "What's something interesting about dogs?",
		Model: "Of course! Dogs have an amazing sense of smell—up to 100,000 times better than humans! 🐶 They can even detect some diseases.",
	}
	pandaFact = Pair{
		User:  "Do you know a cute fact about pandas?",
		Model: "Yes! Baby pandas are born pink, blind, and tiny—about the size of a stick of butter! 🐼 They grow up to be big and fluffy.",
	}
)

// OneShot returns the single cat fact demonstration.
func OneShot() *List {
	return New(catFact)
}

// MultiShot returns the cat, dog and panda demonstrations.
func MultiShot() *List {
	return New(catFact, dogFact, pandaFact)
}
