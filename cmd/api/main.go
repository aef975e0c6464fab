package main

func main() {
	cfg := LoadConfiguration()
	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
