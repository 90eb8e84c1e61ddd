package envelope_test

import (
	"fmt"

	"github.com/cwbudde/algo-ust/envelope"
)

func ExampleParse() {
	env, err := envelope.Parse("0, 5, 35, 0, 100, 100, 0, %, 10")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(env.P4.Value, env.HasP5(), env.Length())
	fmt.Println(env)

	// Output:
	// 10 false 50
	// 0,5,35,0,100,100,0,%,10
}

func ExampleEnvelope_ZeroPValues() {
	env, _ := envelope.Parse("0,5,35,100,100,100,100,%,0,10")
	env.ZeroPValues()
	fmt.Println(env)

	// Output:
	// 0,0,0,100,100,100,100,%,0
}

func ExampleEnvelope_Normalize() {
	env, _ := envelope.Parse("0,5,35,0,80,40,0,%")
	scale, _ := env.Normalize()
	fmt.Println(scale, env)

	// Output:
	// 1.25 0,5,35,0,100,50,0,%
}

func ExampleEnvelope_IsValidWith() {
	env := envelope.New()
	fmt.Println(env.IsValidWith(40), env.IsValidWith(480))

	// Output:
	// false true
}
