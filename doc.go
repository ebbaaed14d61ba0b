// Package spamham classifies short text messages as spam or ham with a
// multinomial Naive Bayes model.
//
// # Quick Start
//
//	records := []vocab.Record{
//	    {Class: vocab.Ham, Text: "Hello how are you"},
//	    {Class: vocab.Spam, Text: "WIN money now"},
//	}
//	model, err := spamham.Train(ctx, records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := model.Classify("win now")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (spam %.4f, ham %.4f)\n", res.Decision, res.LogSpam, res.LogHam)
//
// # Model
//
// Word probabilities use add-one (Laplace) smoothing:
//
//	P(w|c) = (count(w, c) + 1) / (total(c) + |V|)
//
// and a message is scored as log P(c) + sum(log P(w|c)) over its tokens,
// repeated tokens included. The class with the strictly greater score wins;
// an exact tie goes to ham unless WithTieBreak says otherwise.
//
// # Thread Safety
//
// A Model is trained exactly once. After Train returns it is read-only and
// safe for concurrent use by any number of goroutines.
package spamham
