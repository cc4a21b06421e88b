// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package awsutil

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// MockS3Client - mock S3 client for unit tests. Expected requests and queued
// responses are replayed in order. Don't forget to call FinishTest() at the
// end of your test to check that all calls to S3 were made, and there were no
// unexpected calls!
type MockS3Client struct {
	mutex sync.Mutex

	s3iface.S3API

	// Expected requests
	ExpListObjectsV2Input []s3.ListObjectsV2Input
	ExpHeadObjectInput    []s3.HeadObjectInput
	ExpGetObjectInput     []s3.GetObjectInput
	ExpPutObjectInput     []s3.PutObjectInput
	ExpDeleteObjectInput  []s3.DeleteObjectInput

	// Responses replayed as each request comes in. A nil entry makes the
	// call fail with the AWS "not found" error for that operation.
	QueuedListObjectsV2Output []*s3.ListObjectsV2Output
	QueuedHeadObjectOutput    []*s3.HeadObjectOutput
	QueuedGetObjectOutput     []*s3.GetObjectOutput
	QueuedPutObjectOutput     []*s3.PutObjectOutput
	QueuedDeleteObjectOutput  []*s3.DeleteObjectOutput
}

const ErrNoMoreInputsExpected = "No more inputs expected for "
const ErrWrongInput = "Incorrect input in "
const ErrNothingToReturn = "Nothing to return from "
const ErrReturningError = "Returning error from "

// NOTE: This function MUST be called at the end of a unit test/example test. Use defer when declaring MockS3Client!
func (m *MockS3Client) FinishTest() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	err := m.getFinishTestResult()

	// If we found something unexpected, print an error so any example tests get this in their output
	// Unit tests which aren't example based will still get our return value
	if err != nil {
		fmt.Println(err)
	}

	return err
}

func (m *MockS3Client) getFinishTestResult() error {
	if len(m.ExpListObjectsV2Input) > 0 {
		return errors.New("Test expected more ListObjectsV2 calls to func")
	}
	if len(m.ExpHeadObjectInput) > 0 {
		return errors.New("Test expected more HeadObject calls to func")
	}
	if len(m.ExpGetObjectInput) > 0 {
		return errors.New("Test expected more GetObject calls to func")
	}
	if len(m.ExpPutObjectInput) > 0 {
		return errors.New("Test expected more PutObject calls to func")
	}
	if len(m.ExpDeleteObjectInput) > 0 {
		return errors.New("Test expected more DeleteObject calls to func")
	}

	if len(m.QueuedListObjectsV2Output) > 0 {
		return errors.New("Remaining output ListObjectsV2 for func")
	}
	if len(m.QueuedHeadObjectOutput) > 0 {
		return errors.New("Remaining output HeadObject for func")
	}
	if len(m.QueuedGetObjectOutput) > 0 {
		return errors.New("Remaining output GetObject for func")
	}
	if len(m.QueuedPutObjectOutput) > 0 {
		return errors.New("Remaining output PutObject for func")
	}
	if len(m.QueuedDeleteObjectOutput) > 0 {
		return errors.New("Remaining output DeleteObject for func")
	}

	return nil
}

func (m *MockS3Client) ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "ListObjectsV2"

	if len(m.ExpListObjectsV2Input) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expStr := m.ExpListObjectsV2Input[0].String()
	m.ExpListObjectsV2Input = m.ExpListObjectsV2Input[1:]

	inpStr := input.String()
	if expStr != inpStr {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput+name, expStr, inpStr)
	}

	if len(m.QueuedListObjectsV2Output) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedListObjectsV2Output[0]
	m.QueuedListObjectsV2Output = m.QueuedListObjectsV2Output[1:]

	if result == nil {
		return nil, errors.New(ErrReturningError + name)
	}

	return result, nil
}

func (m *MockS3Client) HeadObject(input *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "HeadObject"

	if len(m.ExpHeadObjectInput) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expStr := m.ExpHeadObjectInput[0].String()
	m.ExpHeadObjectInput = m.ExpHeadObjectInput[1:]

	inpStr := input.String()
	if expStr != inpStr {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput+name, expStr, inpStr)
	}

	if len(m.QueuedHeadObjectOutput) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedHeadObjectOutput[0]
	m.QueuedHeadObjectOutput = m.QueuedHeadObjectOutput[1:]

	if result == nil {
		// HeadObject reports a missing key with the bare NotFound code,
		// not ErrCodeNoSuchKey
		return nil, awserr.New("NotFound", ErrReturningError+name, nil)
	}

	return result, nil
}

func (m *MockS3Client) GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "GetObject"

	if len(m.ExpGetObjectInput) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expStr := m.ExpGetObjectInput[0].String()
	m.ExpGetObjectInput = m.ExpGetObjectInput[1:]

	inpStr := input.String()
	if expStr != inpStr {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput+name, expStr, inpStr)
	}

	if len(m.QueuedGetObjectOutput) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedGetObjectOutput[0]
	m.QueuedGetObjectOutput = m.QueuedGetObjectOutput[1:]

	if result == nil {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, ErrReturningError+name, nil)
	}

	return result, nil
}

func (m *MockS3Client) PutObject(input *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "PutObject"

	if len(m.ExpPutObjectInput) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expItem := m.ExpPutObjectInput[0]
	m.ExpPutObjectInput = m.ExpPutObjectInput[1:]

	if *input.Bucket != *expItem.Bucket {
		return nil, fmt.Errorf("%v%v - bucket expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput, name, *expItem.Bucket, *input.Bucket)
	}
	if *input.Key != *expItem.Key {
		return nil, fmt.Errorf("%v%v - key expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput, name, *expItem.Key, *input.Key)
	}

	inpBody := getAsStr(input.Body)
	expBody := getAsStr(expItem.Body)
	if inpBody != expBody {
		return nil, fmt.Errorf("%v%v - body\nexpected: \"%v\"\nS3 recvd: \"%v\"", ErrWrongInput, name, expBody, inpBody)
	}

	if len(m.QueuedPutObjectOutput) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedPutObjectOutput[0]
	m.QueuedPutObjectOutput = m.QueuedPutObjectOutput[1:]

	if result == nil {
		return nil, errors.New(ErrReturningError + name)
	}

	return result, nil
}

func (m *MockS3Client) DeleteObject(input *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	name := "DeleteObject"

	if len(m.ExpDeleteObjectInput) <= 0 {
		return nil, errors.New(ErrNoMoreInputsExpected + name)
	}

	expStr := m.ExpDeleteObjectInput[0].String()
	m.ExpDeleteObjectInput = m.ExpDeleteObjectInput[1:]

	inpStr := input.String()
	if expStr != inpStr {
		return nil, fmt.Errorf("%v expected: \"%v\" S3 recvd: \"%v\"", ErrWrongInput+name, expStr, inpStr)
	}

	if len(m.QueuedDeleteObjectOutput) <= 0 {
		return nil, errors.New(ErrNothingToReturn + name)
	}

	result := m.QueuedDeleteObjectOutput[0]
	m.QueuedDeleteObjectOutput = m.QueuedDeleteObjectOutput[1:]

	if result == nil {
		return nil, errors.New(ErrReturningError + name)
	}

	return result, nil
}

func getAsStr(r io.Reader) string {
	if r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "ERROR GETTING DATA"
	}
	return string(data)
}
