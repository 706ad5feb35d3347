// Package todoapi provides a Go client for a remote todo list service that
// speaks HTTP/JSON.
//
// # Getting Started
//
// Create a client for the service's base endpoint:
//
//	client, err := todoapi.NewClient("https://jsonplaceholder.typicode.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Results
//
// Operations never return a Go error. Each one returns an either.Either whose
// Left side is a todoapi.Error and whose Right side is the decoded value, so
// the failure case has to be looked at before the value can be used:
//
//	res := client.GetTaskByID(ctx, "1")
//	task, ok := res.Right()
//	if !ok {
//	    e, _ := res.Left()
//	    switch e := e.(type) {
//	    case todoapi.ItemNotFoundError:
//	        // Task doesn't exist
//	    case todoapi.UnknownAPIError:
//	        // Unexpected status, see e.StatusCode
//	    case todoapi.NetworkError:
//	        // Server unreachable or response body undecodable
//	    }
//	    return
//	}
//	fmt.Println(task.Title)
//
// # Operations
//
// List every task:
//
//	res := client.ListAllTasks(ctx)
//
// Fetch one task:
//
//	res := client.GetTaskByID(ctx, "1")
//
// Replace a task (the ID is taken from the task):
//
//	res := client.UpdateTaskByID(ctx, todoapi.Task{
//	    ID:         "1",
//	    UserID:     "1",
//	    Title:      "delectus aut autem",
//	    IsFinished: true,
//	})
//
// # Error Mapping
//
//	transport failure or undecodable body  -> NetworkError
//	GetTaskByID and status 404             -> ItemNotFoundError
//	any other unsuccessful status          -> UnknownAPIError{StatusCode}
//
// ListAllTasks and GetTaskByID accept only 200; UpdateTaskByID accepts any
// 2xx status.
//
// # Configuration Options
//
//	todoapi.WithHTTPClient(c)       // Optional: underlying *http.Client
//	todoapi.WithTimeout(duration)   // Optional: HTTP timeout (default: none)
//	todoapi.WithUserAgent(ua)       // Optional: User-Agent header
//	todoapi.WithLogger(logger)      // Optional: zerolog logger for debug output
package todoapi
